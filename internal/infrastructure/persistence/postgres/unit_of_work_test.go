package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

func TestUnitOfWork_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit torna as escritas visíveis", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewRepository[entities.User](db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, &entities.User{Name: "Ana", Email: "ana@example.com"})
		})
		require.NoError(t, err)

		rows, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("erro do callback desfaz as escritas", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewRepository[entities.User](db)
		boom := errors.New("boom")

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, &entities.User{Name: "Ana", Email: "ana@example.com"}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		rows, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows, "rollback não deve deixar rastro")
	})

	t.Run("leituras dentro da transação enxergam escritas não commitadas", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewRepository[entities.User](db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			user := &entities.User{Name: "Ana", Email: "ana@example.com"}
			if err := repo.Create(txCtx, user); err != nil {
				return err
			}
			got, err := repo.GetByID(txCtx, user.ID)
			if err != nil {
				return err
			}
			if got == nil {
				return errors.New("escrita da própria transação deveria estar visível")
			}
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Begin seguido de Rollback descarta as escritas", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewRepository[entities.User](db)

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Create(txCtx, &entities.User{Name: "Ana", Email: "ana@example.com"}))
		require.NoError(t, uow.Rollback(txCtx))

		rows, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
