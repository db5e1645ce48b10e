package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain"
	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// formModuleMapper implementa a validação e o mapeamento da junção
// Form↔Module
type formModuleMapper struct{}

func (formModuleMapper) Validate(d dto.FormModuleDTO) error {
	if err := requirePositiveID(d.ModuleID, "ModuleId"); err != nil {
		return err
	}
	return requirePositiveID(d.FormID, "FormId")
}

func (formModuleMapper) ToEntity(d dto.FormModuleDTO) *entities.FormModule {
	return &entities.FormModule{
		ID:        d.ID,
		FormID:    d.FormID,
		ModuleID:  d.ModuleID,
		CreatedAt: d.CreatedAt,
	}
}

func (formModuleMapper) ToDTO(e *entities.FormModule) dto.FormModuleDTO {
	return dto.FormModuleDTO{
		ID:        e.ID,
		FormID:    e.FormID,
		ModuleID:  e.ModuleID,
		CreatedAt: e.CreatedAt,
	}
}

// FormModuleService gerencia o agrupamento de forms sob modules.
// O par (ModuleID, FormID) é único entre linhas ativas.
type FormModuleService struct {
	*CrudService[dto.FormModuleDTO, entities.FormModule]
	formModuleRepo repositories.FormModuleRepository
	formRepo       repositories.Repository[entities.Form]
	moduleRepo     repositories.Repository[entities.Module]
	uow            domain.UnitOfWork
}

// NewFormModuleService cria um novo FormModuleService
func NewFormModuleService(
	formModuleRepo repositories.FormModuleRepository,
	formRepo repositories.Repository[entities.Form],
	moduleRepo repositories.Repository[entities.Module],
	uow domain.UnitOfWork,
	logger ports.Logger,
) *FormModuleService {
	return &FormModuleService{
		CrudService:    NewCrudService[dto.FormModuleDTO, entities.FormModule](formModuleRepo, formModuleMapper{}, logger, "FormModule"),
		formModuleRepo: formModuleRepo,
		formRepo:       formRepo,
		moduleRepo:     moduleRepo,
		uow:            uow,
	}
}

// Create valida as foreign keys e rejeita pares duplicados com
// ConflictError. Checagens e insert compartilham uma transação, mas
// em read committed duas criações concorrentes do mesmo par ainda
// podem passar ambas (corrida herdada do design original).
func (s *FormModuleService) Create(ctx context.Context, d dto.FormModuleDTO) (dto.FormModuleDTO, error) {
	if err := (formModuleMapper{}).Validate(d); err != nil {
		return dto.FormModuleDTO{}, err
	}

	var created dto.FormModuleDTO
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.createInTx(ctx, d)
		return err
	})
	if err != nil {
		return dto.FormModuleDTO{}, err
	}
	return created, nil
}

func (s *FormModuleService) createInTx(ctx context.Context, d dto.FormModuleDTO) (dto.FormModuleDTO, error) {
	form, err := s.formRepo.GetByID(ctx, d.FormID)
	if err != nil {
		s.logger.Error("failed to check referenced form", "form_id", d.FormID, "error", err)
		return dto.FormModuleDTO{}, err
	}
	if form == nil {
		return dto.FormModuleDTO{}, domainerrors.NewNotFoundError("Form", d.FormID)
	}

	module, err := s.moduleRepo.GetByID(ctx, d.ModuleID)
	if err != nil {
		s.logger.Error("failed to check referenced module", "module_id", d.ModuleID, "error", err)
		return dto.FormModuleDTO{}, err
	}
	if module == nil {
		return dto.FormModuleDTO{}, domainerrors.NewNotFoundError("Module", d.ModuleID)
	}

	existing, err := s.formModuleRepo.GetByModuleIDAndFormID(ctx, d.ModuleID, d.FormID)
	if err != nil {
		s.logger.Error("failed to check form module pair", "module_id", d.ModuleID, "form_id", d.FormID, "error", err)
		return dto.FormModuleDTO{}, err
	}
	if existing != nil {
		return dto.FormModuleDTO{}, domainerrors.NewConflictError("form is already associated with this module")
	}

	return s.CrudService.Create(ctx, d)
}

// GetByModuleIDAndFormID retorna a associação ativa para o par, ou
// (nil, nil) quando não existe
func (s *FormModuleService) GetByModuleIDAndFormID(ctx context.Context, moduleID, formID int64) (*dto.FormModuleDTO, error) {
	entity, err := s.formModuleRepo.GetByModuleIDAndFormID(ctx, moduleID, formID)
	if err != nil {
		s.logger.Error("failed to get form module pair", "module_id", moduleID, "form_id", formID, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	d := formModuleMapper{}.ToDTO(entity)
	return &d, nil
}
