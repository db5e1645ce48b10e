package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

func newRolService() (*RolService, *fakeRepo[entities.Rol]) {
	repo := newFakeRepo(func(e *entities.Rol, id int64) { e.ID = id })
	return NewRolService(repo, nopLogger{}), repo
}

func TestRolService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("rol inexistente levanta NotFoundError tipado", func(t *testing.T) {
		svc, _ := newRolService()

		_, err := svc.GetByID(ctx, 42)

		var nfErr *domainerrors.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("esperava NotFoundError, obteve %v", err)
		}
		if nfErr.Entity != "Rol" || nfErr.ID != 42 {
			t.Errorf("esperava Rol/42, obteve %s/%d", nfErr.Entity, nfErr.ID)
		}
	})

	t.Run("rol soft-deletado também é not found", func(t *testing.T) {
		svc, _ := newRolService()

		created, _ := svc.Create(ctx, dto.RolDTO{Name: "Admin"})
		svc.Delete(ctx, created.ID)

		_, err := svc.GetByID(ctx, created.ID)

		var nfErr *domainerrors.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("esperava NotFoundError, obteve %v", err)
		}
	})

	t.Run("falha de storage vira ExternalServiceError", func(t *testing.T) {
		svc, repo := newRolService()
		cause := errors.New("connection refused")
		repo.err = cause

		_, err := svc.GetByID(ctx, 1)

		var esErr *domainerrors.ExternalServiceError
		if !errors.As(err, &esErr) {
			t.Fatalf("esperava ExternalServiceError, obteve %v", err)
		}
		if !errors.Is(err, cause) {
			t.Error("causa original deve ser preservada via Unwrap")
		}
	})
}

func TestRolService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cria rol com sucesso", func(t *testing.T) {
		svc, _ := newRolService()

		created, err := svc.Create(ctx, dto.RolDTO{Name: "Admin", Description: "acesso total"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if created.ID != 1 {
			t.Errorf("esperava id 1, obteve %d", created.ID)
		}
	})

	t.Run("nome vazio falha com ValidationError", func(t *testing.T) {
		svc, repo := newRolService()

		_, err := svc.Create(ctx, dto.RolDTO{Description: "sem nome"})

		var vErr *domainerrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("esperava ValidationError, obteve %v", err)
		}
		if repo.creates != 0 {
			t.Errorf("validação não pode gravar; %d writes", repo.creates)
		}
	})

	t.Run("falha de storage vira ExternalServiceError", func(t *testing.T) {
		svc, repo := newRolService()
		repo.err = errors.New("disk full")

		_, err := svc.Create(ctx, dto.RolDTO{Name: "Admin"})

		var esErr *domainerrors.ExternalServiceError
		if !errors.As(err, &esErr) {
			t.Fatalf("esperava ExternalServiceError, obteve %v", err)
		}
	})
}

func TestRolService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete de rol inexistente retorna false", func(t *testing.T) {
		svc, _ := newRolService()

		if svc.Delete(ctx, 99) {
			t.Error("esperava false para rol inexistente")
		}
	})

	t.Run("falha de storage no delete vira false, não erro tipado", func(t *testing.T) {
		svc, repo := newRolService()
		repo.err = errors.New("connection refused")

		if svc.Delete(ctx, 1) {
			t.Error("falha de storage deve rebaixar para false")
		}
		if svc.PermanentDelete(ctx, 1) {
			t.Error("falha de storage deve rebaixar para false")
		}
	})
}
