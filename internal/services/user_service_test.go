package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

func newUserService() (*UserService, *fakeRepo[entities.User]) {
	repo := newFakeRepo(func(e *entities.User, id int64) { e.ID = id })
	return NewUserService(repo, nopLogger{}), repo
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cria usuário e atribui id", func(t *testing.T) {
		svc, _ := newUserService()

		created, err := svc.Create(ctx, dto.UserDTO{Name: "Ana", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if created.ID != 1 {
			t.Errorf("esperava id 1, obteve %d", created.ID)
		}
		if created.Name != "Ana" {
			t.Errorf("esperava nome 'Ana', obteve '%s'", created.Name)
		}
	})

	t.Run("nome vazio falha sem tocar o store", func(t *testing.T) {
		svc, repo := newUserService()

		_, err := svc.Create(ctx, dto.UserDTO{Name: "   ", Email: "ana@example.com"})

		var vErr *domainerrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("esperava ValidationError, obteve %v", err)
		}
		if vErr.Field != "Name" {
			t.Errorf("esperava campo 'Name', obteve '%s'", vErr.Field)
		}
		if repo.creates != 0 {
			t.Errorf("validação não pode gravar; %d writes", repo.creates)
		}
	})

	t.Run("email vazio falha", func(t *testing.T) {
		svc, _ := newUserService()

		_, err := svc.Create(ctx, dto.UserDTO{Name: "Ana"})

		var vErr *domainerrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("esperava ValidationError, obteve %v", err)
		}
		if vErr.Field != "Email" {
			t.Errorf("esperava campo 'Email', obteve '%s'", vErr.Field)
		}
	})

	t.Run("resposta nunca carrega a senha", func(t *testing.T) {
		svc, _ := newUserService()

		created, err := svc.Create(ctx, dto.UserDTO{Name: "Ana", Email: "ana@example.com", Password: "hash"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if created.Password != "" {
			t.Error("senha não pode voltar na resposta")
		}
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna nil sem erro quando não existe", func(t *testing.T) {
		svc, _ := newUserService()

		user, err := svc.GetByID(ctx, 42)
		if err != nil {
			t.Fatalf("ausência não é erro, obteve: %v", err)
		}
		if user != nil {
			t.Errorf("esperava nil, obteve %+v", user)
		}
	})

	t.Run("retorna nil após soft delete", func(t *testing.T) {
		svc, _ := newUserService()

		created, err := svc.Create(ctx, dto.UserDTO{Name: "Ana", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !svc.Delete(ctx, created.ID) {
			t.Fatal("esperava delete com sucesso")
		}

		user, err := svc.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("ausência não é erro, obteve: %v", err)
		}
		if user != nil {
			t.Error("linha soft-deletada não pode aparecer")
		}
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("substitui a linha por completo", func(t *testing.T) {
		svc, _ := newUserService()

		created, _ := svc.Create(ctx, dto.UserDTO{Name: "Ana", Email: "ana@example.com"})

		updated, err := svc.Update(ctx, dto.UserDTO{ID: created.ID, Name: "Ana Maria", Email: "ana.maria@example.com"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !updated {
			t.Fatal("esperava update com sucesso")
		}

		got, _ := svc.GetByID(ctx, created.ID)
		if got == nil || got.Name != "Ana Maria" {
			t.Errorf("esperava nome atualizado, obteve %+v", got)
		}
	})

	t.Run("alvo inexistente retorna false sem erro", func(t *testing.T) {
		svc, _ := newUserService()

		updated, err := svc.Update(ctx, dto.UserDTO{ID: 99, Name: "Ana", Email: "a@b.c"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated {
			t.Error("esperava false para alvo inexistente")
		}
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("falha de storage vira false", func(t *testing.T) {
		svc, repo := newUserService()
		repo.err = errors.New("connection refused")

		if svc.Delete(ctx, 1) {
			t.Error("falha de storage deve rebaixar para false")
		}
	})

	t.Run("permanent delete remove linha soft-deletada", func(t *testing.T) {
		svc, _ := newUserService()

		created, _ := svc.Create(ctx, dto.UserDTO{Name: "Ana", Email: "ana@example.com"})
		svc.Delete(ctx, created.ID)

		if !svc.PermanentDelete(ctx, created.ID) {
			t.Error("permanent delete ignora o filtro de soft delete")
		}
		if svc.PermanentDelete(ctx, created.ID) {
			t.Error("segunda remoção deve retornar false")
		}
	})
}
