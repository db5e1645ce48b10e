package services

import (
	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// permissionMapper implementa o mapeamento de Permission.
// Um bundle só de booleanos não tem campo obrigatório.
type permissionMapper struct{}

func (permissionMapper) Validate(d dto.PermissionDTO) error {
	return nil
}

func (permissionMapper) ToEntity(d dto.PermissionDTO) *entities.Permission {
	return &entities.Permission{
		ID:        d.ID,
		CanRead:   d.CanRead,
		CanCreate: d.CanCreate,
		CanUpdate: d.CanUpdate,
		CanDelete: d.CanDelete,
		CreatedAt: d.CreatedAt,
	}
}

func (permissionMapper) ToDTO(e *entities.Permission) dto.PermissionDTO {
	return dto.PermissionDTO{
		ID:        e.ID,
		CanRead:   e.CanRead,
		CanCreate: e.CanCreate,
		CanUpdate: e.CanUpdate,
		CanDelete: e.CanDelete,
		CreatedAt: e.CreatedAt,
	}
}

// PermissionService gerencia o CRUD de permissions
type PermissionService struct {
	*CrudService[dto.PermissionDTO, entities.Permission]
}

// NewPermissionService cria um novo PermissionService
func NewPermissionService(repo repositories.Repository[entities.Permission], logger ports.Logger) *PermissionService {
	return &PermissionService{
		CrudService: NewCrudService(repo, permissionMapper{}, logger, "Permission"),
	}
}
