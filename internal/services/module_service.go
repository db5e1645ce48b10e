package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// ModuleService segue o mesmo contrato de falha do RolService:
// NotFoundError tipado em GetByID e ExternalServiceError nas falhas
// de storage. Ver nota no RolService antes de unificar.
type ModuleService struct {
	repo   repositories.Repository[entities.Module]
	logger ports.Logger
}

// NewModuleService cria um novo ModuleService
func NewModuleService(repo repositories.Repository[entities.Module], logger ports.Logger) *ModuleService {
	return &ModuleService{repo: repo, logger: logger}
}

func (s *ModuleService) validate(d dto.ModuleDTO) error {
	return requireField(d.Code, "Code")
}

func (s *ModuleService) toEntity(d dto.ModuleDTO) *entities.Module {
	return &entities.Module{
		ID:        d.ID,
		Code:      d.Code,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}

func (s *ModuleService) toDTO(e *entities.Module) dto.ModuleDTO {
	return dto.ModuleDTO{
		ID:        e.ID,
		Code:      e.Code,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
	}
}

// Create valida e persiste um module
func (s *ModuleService) Create(ctx context.Context, d dto.ModuleDTO) (dto.ModuleDTO, error) {
	if err := s.validate(d); err != nil {
		return dto.ModuleDTO{}, err
	}

	entity := s.toEntity(d)
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("failed to create module", "error", err)
		return dto.ModuleDTO{}, domainerrors.NewExternalServiceError("module repository", err)
	}

	return s.toDTO(entity), nil
}

// GetAll retorna os modules ativos
func (s *ModuleService) GetAll(ctx context.Context) ([]dto.ModuleDTO, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list modules", "error", err)
		return nil, domainerrors.NewExternalServiceError("module repository", err)
	}

	result := make([]dto.ModuleDTO, 0, len(rows))
	for i := range rows {
		result = append(result, s.toDTO(&rows[i]))
	}
	return result, nil
}

// GetByID levanta NotFoundError quando o module não existe ou foi
// soft-deletado
func (s *ModuleService) GetByID(ctx context.Context, id int64) (dto.ModuleDTO, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get module", "id", id, "error", err)
		return dto.ModuleDTO{}, domainerrors.NewExternalServiceError("module repository", err)
	}
	if entity == nil {
		return dto.ModuleDTO{}, domainerrors.NewNotFoundError("Module", id)
	}

	return s.toDTO(entity), nil
}

// Update substitui o module por completo; false se o alvo não existe
func (s *ModuleService) Update(ctx context.Context, d dto.ModuleDTO) (bool, error) {
	if err := s.validate(d); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, s.toEntity(d))
	if err != nil {
		s.logger.Error("failed to update module", "id", d.ID, "error", err)
		return false, domainerrors.NewExternalServiceError("module repository", err)
	}
	return updated, nil
}

// Delete faz soft delete; falhas de storage viram false
func (s *ModuleService) Delete(ctx context.Context, id int64) bool {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete module", "id", id, "error", err)
		return false
	}
	return deleted
}

// PermanentDelete remove o module fisicamente; mesmo contrato booleano
func (s *ModuleService) PermanentDelete(ctx context.Context, id int64) bool {
	deleted, err := s.repo.PermanentDelete(ctx, id)
	if err != nil {
		s.logger.Error("failed to permanently delete module", "id", id, "error", err)
		return false
	}
	return deleted
}
