package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

func seedActivityLogs(t *testing.T, repo repositories.ActivityLogRepository, base time.Time) {
	t.Helper()

	ctx := context.Background()
	records := []entities.ActivityLog{
		{UserID: 1, UserName: "ana", Action: "create", EntityType: "User", EntityID: 10, Timestamp: base},
		{UserID: 2, UserName: "bia", Action: "update", EntityType: "Rol", EntityID: 20, Timestamp: base.Add(1 * time.Minute)},
		{UserID: 1, UserName: "ana", Action: "delete", EntityType: "User", EntityID: 11, Timestamp: base.Add(2 * time.Minute)},
	}
	for i := range records {
		require.NoError(t, repo.Create(ctx, &records[i]))
	}
}

func TestActivityLogRepository_GetRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(newTestDB(t))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedActivityLogs(t, repo, base)

	t.Run("mais recentes primeiro", func(t *testing.T) {
		rows, err := repo.GetRecent(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "delete", rows[0].Action)
		assert.Equal(t, "create", rows[2].Action)
	})

	t.Run("paginação com limit e offset", func(t *testing.T) {
		rows, err := repo.GetRecent(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "update", rows[0].Action)
	})
}

func TestActivityLogRepository_Filtros(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(newTestDB(t))
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedActivityLogs(t, repo, base)

	t.Run("por usuário", func(t *testing.T) {
		rows, err := repo.GetByUser(ctx, 1, 10, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, int64(1), row.UserID)
		}
	})

	t.Run("por tipo de entidade", func(t *testing.T) {
		rows, err := repo.GetByEntityType(ctx, "Rol", 10, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "update", rows[0].Action)
	})

	t.Run("por intervalo de datas, bordas inclusas", func(t *testing.T) {
		rows, err := repo.GetByDateRange(ctx, base, base.Add(1*time.Minute), 10, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "update", rows[0].Action)
		assert.Equal(t, "create", rows[1].Action)
	})
}

func TestActivityLogRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityLogRepository(newTestDB(t))

	record := &entities.ActivityLog{UserID: 1, UserName: "ana", Action: "login", EntityType: "Login", EntityID: 1, Timestamp: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "login", got.Action)

	t.Run("registro inexistente retorna nil sem erro", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
