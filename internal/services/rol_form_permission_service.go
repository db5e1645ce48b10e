package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// rolFormPermissionMapper implementa a validação e o mapeamento das
// concessões Rol×Form×Permission
type rolFormPermissionMapper struct{}

func (rolFormPermissionMapper) Validate(d dto.RolFormPermissionDTO) error {
	if err := requirePositiveID(d.RolID, "RolId"); err != nil {
		return err
	}
	if err := requirePositiveID(d.FormID, "FormId"); err != nil {
		return err
	}
	return requirePositiveID(d.PermissionID, "PermissionId")
}

func (rolFormPermissionMapper) ToEntity(d dto.RolFormPermissionDTO) *entities.RolFormPermission {
	return &entities.RolFormPermission{
		ID:           d.ID,
		RolID:        d.RolID,
		FormID:       d.FormID,
		PermissionID: d.PermissionID,
		CreatedAt:    d.CreatedAt,
	}
}

func (rolFormPermissionMapper) ToDTO(e *entities.RolFormPermission) dto.RolFormPermissionDTO {
	return dto.RolFormPermissionDTO{
		ID:           e.ID,
		RolID:        e.RolID,
		FormID:       e.FormID,
		PermissionID: e.PermissionID,
		CreatedAt:    e.CreatedAt,
	}
}

// RolFormPermissionService gerencia as concessões do grafo de
// autorização. Não há checagem de unicidade em (RolID, FormID);
// concessões duplicadas para o mesmo par são aceitas, como no sistema
// original.
type RolFormPermissionService struct {
	*CrudService[dto.RolFormPermissionDTO, entities.RolFormPermission]
	grantRepo      repositories.RolFormPermissionRepository
	rolRepo        repositories.Repository[entities.Rol]
	formRepo       repositories.Repository[entities.Form]
	permissionRepo repositories.Repository[entities.Permission]
}

// NewRolFormPermissionService cria um novo RolFormPermissionService
func NewRolFormPermissionService(
	grantRepo repositories.RolFormPermissionRepository,
	rolRepo repositories.Repository[entities.Rol],
	formRepo repositories.Repository[entities.Form],
	permissionRepo repositories.Repository[entities.Permission],
	logger ports.Logger,
) *RolFormPermissionService {
	return &RolFormPermissionService{
		CrudService:    NewCrudService[dto.RolFormPermissionDTO, entities.RolFormPermission](grantRepo, rolFormPermissionMapper{}, logger, "RolFormPermission"),
		grantRepo:      grantRepo,
		rolRepo:        rolRepo,
		formRepo:       formRepo,
		permissionRepo: permissionRepo,
	}
}

// Create valida as três foreign keys (positivas e existentes) antes
// de gravar a concessão
func (s *RolFormPermissionService) Create(ctx context.Context, d dto.RolFormPermissionDTO) (dto.RolFormPermissionDTO, error) {
	if err := (rolFormPermissionMapper{}).Validate(d); err != nil {
		return dto.RolFormPermissionDTO{}, err
	}

	rol, err := s.rolRepo.GetByID(ctx, d.RolID)
	if err != nil {
		s.logger.Error("failed to check referenced rol", "rol_id", d.RolID, "error", err)
		return dto.RolFormPermissionDTO{}, err
	}
	if rol == nil {
		return dto.RolFormPermissionDTO{}, domainerrors.NewNotFoundError("Rol", d.RolID)
	}

	form, err := s.formRepo.GetByID(ctx, d.FormID)
	if err != nil {
		s.logger.Error("failed to check referenced form", "form_id", d.FormID, "error", err)
		return dto.RolFormPermissionDTO{}, err
	}
	if form == nil {
		return dto.RolFormPermissionDTO{}, domainerrors.NewNotFoundError("Form", d.FormID)
	}

	permission, err := s.permissionRepo.GetByID(ctx, d.PermissionID)
	if err != nil {
		s.logger.Error("failed to check referenced permission", "permission_id", d.PermissionID, "error", err)
		return dto.RolFormPermissionDTO{}, err
	}
	if permission == nil {
		return dto.RolFormPermissionDTO{}, domainerrors.NewNotFoundError("Permission", d.PermissionID)
	}

	return s.CrudService.Create(ctx, d)
}

// GetByRolID retorna as concessões ativas de um rol na ordem de
// inserção
func (s *RolFormPermissionService) GetByRolID(ctx context.Context, rolID int64) ([]dto.RolFormPermissionDTO, error) {
	rows, err := s.grantRepo.GetByRolID(ctx, rolID)
	if err != nil {
		s.logger.Error("failed to list grants", "rol_id", rolID, "error", err)
		return nil, err
	}

	result := make([]dto.RolFormPermissionDTO, 0, len(rows))
	for i := range rows {
		result = append(result, rolFormPermissionMapper{}.ToDTO(&rows[i]))
	}
	return result, nil
}
