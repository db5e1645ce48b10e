package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

type formModuleFixture struct {
	svc        *FormModuleService
	formRepo   *fakeRepo[entities.Form]
	moduleRepo *fakeRepo[entities.Module]
}

func newFormModuleFixture(t *testing.T) formModuleFixture {
	t.Helper()

	formRepo := newFakeRepo(func(e *entities.Form, id int64) { e.ID = id })
	moduleRepo := newFakeRepo(func(e *entities.Module, id int64) { e.ID = id })
	fmRepo := newFakeFormModuleRepo()

	svc := NewFormModuleService(fmRepo, formRepo, moduleRepo, fakeUnitOfWork{}, nopLogger{})
	return formModuleFixture{svc: svc, formRepo: formRepo, moduleRepo: moduleRepo}
}

func (f formModuleFixture) seed(t *testing.T, ctx context.Context) (formID, moduleID int64) {
	t.Helper()

	form := &entities.Form{Name: "Orders", Code: "ORD", Active: true}
	if err := f.formRepo.Create(ctx, form); err != nil {
		t.Fatalf("falha ao semear form: %v", err)
	}
	module := &entities.Module{Code: "SALES", Active: true}
	if err := f.moduleRepo.Create(ctx, module); err != nil {
		t.Fatalf("falha ao semear module: %v", err)
	}
	return form.ID, module.ID
}

func TestFormModuleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("associa form a module", func(t *testing.T) {
		f := newFormModuleFixture(t)
		formID, moduleID := f.seed(t, ctx)

		created, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: moduleID})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if created.ID == 0 {
			t.Error("esperava id atribuído")
		}
	})

	t.Run("par duplicado levanta ConflictError", func(t *testing.T) {
		f := newFormModuleFixture(t)
		formID, moduleID := f.seed(t, ctx)

		if _, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: moduleID}); err != nil {
			t.Fatalf("primeira associação deve passar: %v", err)
		}

		_, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: moduleID})

		var cErr *domainerrors.ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("esperava ConflictError, obteve %v", err)
		}
	})

	t.Run("após soft delete o par pode ser recriado", func(t *testing.T) {
		f := newFormModuleFixture(t)
		formID, moduleID := f.seed(t, ctx)

		created, _ := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: moduleID})
		if !f.svc.Delete(ctx, created.ID) {
			t.Fatal("esperava delete com sucesso")
		}

		if _, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: moduleID}); err != nil {
			t.Errorf("par liberado pelo soft delete deve poder ser recriado: %v", err)
		}
	})

	t.Run("foreign key não positiva falha na validação", func(t *testing.T) {
		f := newFormModuleFixture(t)

		_, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: 0, ModuleID: 1})

		var vErr *domainerrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("esperava ValidationError, obteve %v", err)
		}
	})

	t.Run("form inexistente levanta NotFoundError", func(t *testing.T) {
		f := newFormModuleFixture(t)
		_, moduleID := f.seed(t, ctx)

		_, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: 99, ModuleID: moduleID})

		var nfErr *domainerrors.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("esperava NotFoundError, obteve %v", err)
		}
		if nfErr.Entity != "Form" {
			t.Errorf("esperava entidade 'Form', obteve '%s'", nfErr.Entity)
		}
	})

	t.Run("module inexistente levanta NotFoundError", func(t *testing.T) {
		f := newFormModuleFixture(t)
		formID, _ := f.seed(t, ctx)

		_, err := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: 99})

		var nfErr *domainerrors.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("esperava NotFoundError, obteve %v", err)
		}
		if nfErr.Entity != "Module" {
			t.Errorf("esperava entidade 'Module', obteve '%s'", nfErr.Entity)
		}
	})
}

func TestFormModuleService_GetByModuleIDAndFormID(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna a associação ativa do par", func(t *testing.T) {
		f := newFormModuleFixture(t)
		formID, moduleID := f.seed(t, ctx)
		created, _ := f.svc.Create(ctx, dto.FormModuleDTO{FormID: formID, ModuleID: moduleID})

		got, err := f.svc.GetByModuleIDAndFormID(ctx, moduleID, formID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if got == nil || got.ID != created.ID {
			t.Errorf("esperava associação %d, obteve %+v", created.ID, got)
		}
	})

	t.Run("par inexistente retorna nil sem erro", func(t *testing.T) {
		f := newFormModuleFixture(t)

		got, err := f.svc.GetByModuleIDAndFormID(ctx, 1, 2)
		if err != nil {
			t.Fatalf("ausência não é erro, obteve: %v", err)
		}
		if got != nil {
			t.Errorf("esperava nil, obteve %+v", got)
		}
	})
}
