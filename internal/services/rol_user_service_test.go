package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

type rolUserFixture struct {
	svc         *RolUserService
	rolUserRepo *fakeRolUserRepo
	userRepo    *fakeRepo[entities.User]
	rolRepo     *fakeRepo[entities.Rol]
}

func newRolUserFixture(t *testing.T) rolUserFixture {
	t.Helper()

	userRepo := newFakeRepo(func(e *entities.User, id int64) { e.ID = id })
	rolRepo := newFakeRepo(func(e *entities.Rol, id int64) { e.ID = id })
	rolUserRepo := newFakeRolUserRepo()

	svc := NewRolUserService(rolUserRepo, userRepo, rolRepo, nopLogger{})
	return rolUserFixture{svc: svc, rolUserRepo: rolUserRepo, userRepo: userRepo, rolRepo: rolRepo}
}

func (f rolUserFixture) seed(t *testing.T, ctx context.Context) (userID, rolID int64) {
	t.Helper()

	user := &entities.User{Name: "Maria", Email: "maria@example.com"}
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("falha ao semear user: %v", err)
	}
	rol := &entities.Rol{Name: "admin"}
	if err := f.rolRepo.Create(ctx, rol); err != nil {
		t.Fatalf("falha ao semear rol: %v", err)
	}
	return user.ID, rol.ID
}

func TestRolUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("atribui rol a usuário", func(t *testing.T) {
		f := newRolUserFixture(t)
		userID, rolID := f.seed(t, ctx)

		created, err := f.svc.Create(ctx, dto.RolUserDTO{UserID: userID, RolID: rolID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if created.ID == 0 {
			t.Error("esperava id atribuído")
		}
	})

	t.Run("atribuições duplicadas do mesmo par são aceitas", func(t *testing.T) {
		f := newRolUserFixture(t)
		userID, rolID := f.seed(t, ctx)

		first, err := f.svc.Create(ctx, dto.RolUserDTO{UserID: userID, RolID: rolID})
		if err != nil {
			t.Fatalf("primeira atribuição deve passar: %v", err)
		}
		second, err := f.svc.Create(ctx, dto.RolUserDTO{UserID: userID, RolID: rolID})
		if err != nil {
			t.Fatalf("atribuição repetida também deve passar: %v", err)
		}
		if first.ID == second.ID {
			t.Error("esperava linhas distintas para o par repetido")
		}
	})

	t.Run("foreign key não positiva falha na validação", func(t *testing.T) {
		f := newRolUserFixture(t)

		_, err := f.svc.Create(ctx, dto.RolUserDTO{UserID: -1, RolID: 1})

		var vErr *domainerrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("esperava ValidationError, obteve %v", err)
		}
		if f.rolUserRepo.creates != 0 {
			t.Error("validação deve barrar antes do storage")
		}
	})

	t.Run("usuário inexistente levanta NotFoundError", func(t *testing.T) {
		f := newRolUserFixture(t)
		_, rolID := f.seed(t, ctx)

		_, err := f.svc.Create(ctx, dto.RolUserDTO{UserID: 99, RolID: rolID})

		var nfErr *domainerrors.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("esperava NotFoundError, obteve %v", err)
		}
		if nfErr.Entity != "User" {
			t.Errorf("esperava entidade 'User', obteve '%s'", nfErr.Entity)
		}
	})

	t.Run("rol inexistente levanta NotFoundError", func(t *testing.T) {
		f := newRolUserFixture(t)
		userID, _ := f.seed(t, ctx)

		_, err := f.svc.Create(ctx, dto.RolUserDTO{UserID: userID, RolID: 99})

		var nfErr *domainerrors.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("esperava NotFoundError, obteve %v", err)
		}
		if nfErr.Entity != "Rol" {
			t.Errorf("esperava entidade 'Rol', obteve '%s'", nfErr.Entity)
		}
	})
}

func TestRolUserService_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("lista só as atribuições ativas do usuário", func(t *testing.T) {
		f := newRolUserFixture(t)
		userID, rolID := f.seed(t, ctx)
		otherRol := &entities.Rol{Name: "viewer"}
		if err := f.rolRepo.Create(ctx, otherRol); err != nil {
			t.Fatalf("falha ao semear rol: %v", err)
		}

		kept, _ := f.svc.Create(ctx, dto.RolUserDTO{UserID: userID, RolID: rolID})
		removed, _ := f.svc.Create(ctx, dto.RolUserDTO{UserID: userID, RolID: otherRol.ID})
		if !f.svc.Delete(ctx, removed.ID) {
			t.Fatal("esperava delete com sucesso")
		}

		rows, err := f.svc.GetByUserID(ctx, userID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(rows) != 1 || rows[0].ID != kept.ID {
			t.Errorf("esperava só a atribuição %d, obteve %+v", kept.ID, rows)
		}
	})

	t.Run("usuário sem atribuições retorna lista vazia", func(t *testing.T) {
		f := newRolUserFixture(t)

		rows, err := f.svc.GetByUserID(ctx, 7)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("esperava lista vazia, obteve %+v", rows)
		}
	})
}
