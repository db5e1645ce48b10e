package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// RolService reimplementa o protocolo CRUD diretamente, com contrato
// de falha próprio: GetByID em linha ausente levanta NotFoundError
// tipado (em vez de DTO nulo) e falhas de storage em
// create/read/update são envolvidas em ExternalServiceError. A camada
// de transporte mapeia status a partir desses tipos; não unificar com
// o contrato dos demais services.
type RolService struct {
	repo   repositories.Repository[entities.Rol]
	logger ports.Logger
}

// NewRolService cria um novo RolService
func NewRolService(repo repositories.Repository[entities.Rol], logger ports.Logger) *RolService {
	return &RolService{repo: repo, logger: logger}
}

func (s *RolService) validate(d dto.RolDTO) error {
	return requireField(d.Name, "Name")
}

func (s *RolService) toEntity(d dto.RolDTO) *entities.Rol {
	return &entities.Rol{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (s *RolService) toDTO(e *entities.Rol) dto.RolDTO {
	return dto.RolDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// Create valida e persiste um rol
func (s *RolService) Create(ctx context.Context, d dto.RolDTO) (dto.RolDTO, error) {
	if err := s.validate(d); err != nil {
		return dto.RolDTO{}, err
	}

	entity := s.toEntity(d)
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("failed to create rol", "error", err)
		return dto.RolDTO{}, domainerrors.NewExternalServiceError("rol repository", err)
	}

	return s.toDTO(entity), nil
}

// GetAll retorna os rols ativos
func (s *RolService) GetAll(ctx context.Context) ([]dto.RolDTO, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list rols", "error", err)
		return nil, domainerrors.NewExternalServiceError("rol repository", err)
	}

	result := make([]dto.RolDTO, 0, len(rows))
	for i := range rows {
		result = append(result, s.toDTO(&rows[i]))
	}
	return result, nil
}

// GetByID levanta NotFoundError quando o rol não existe ou foi
// soft-deletado
func (s *RolService) GetByID(ctx context.Context, id int64) (dto.RolDTO, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get rol", "id", id, "error", err)
		return dto.RolDTO{}, domainerrors.NewExternalServiceError("rol repository", err)
	}
	if entity == nil {
		return dto.RolDTO{}, domainerrors.NewNotFoundError("Rol", id)
	}

	return s.toDTO(entity), nil
}

// Update substitui o rol por completo; false se o alvo não existe
func (s *RolService) Update(ctx context.Context, d dto.RolDTO) (bool, error) {
	if err := s.validate(d); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, s.toEntity(d))
	if err != nil {
		s.logger.Error("failed to update rol", "id", d.ID, "error", err)
		return false, domainerrors.NewExternalServiceError("rol repository", err)
	}
	return updated, nil
}

// Delete faz soft delete; falhas de storage viram false (ver
// CrudService.Delete)
func (s *RolService) Delete(ctx context.Context, id int64) bool {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete rol", "id", id, "error", err)
		return false
	}
	return deleted
}

// PermanentDelete remove o rol fisicamente; mesmo contrato booleano
func (s *RolService) PermanentDelete(ctx context.Context, id int64) bool {
	deleted, err := s.repo.PermanentDelete(ctx, id)
	if err != nil {
		s.logger.Error("failed to permanently delete rol", "id", id, "error", err)
		return false
	}
	return deleted
}
