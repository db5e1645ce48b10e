package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// rolUserMapper implementa a validação e o mapeamento da junção
// User↔Rol. Só valida ids positivos; a existência dos referenciados é
// checada pelo service, que tem acesso aos outros repositórios.
type rolUserMapper struct{}

func (rolUserMapper) Validate(d dto.RolUserDTO) error {
	if err := requirePositiveID(d.UserID, "UserId"); err != nil {
		return err
	}
	return requirePositiveID(d.RolID, "RolId")
}

func (rolUserMapper) ToEntity(d dto.RolUserDTO) *entities.RolUser {
	return &entities.RolUser{
		ID:        d.ID,
		UserID:    d.UserID,
		RolID:     d.RolID,
		CreatedAt: d.CreatedAt,
	}
}

func (rolUserMapper) ToDTO(e *entities.RolUser) dto.RolUserDTO {
	return dto.RolUserDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		RolID:     e.RolID,
		CreatedAt: e.CreatedAt,
	}
}

// RolUserService gerencia a atribuição de rols a usuários.
// Nenhuma checagem de unicidade em (UserID, RolID): atribuições
// duplicadas são aceitas, como no sistema original.
type RolUserService struct {
	*CrudService[dto.RolUserDTO, entities.RolUser]
	rolUserRepo repositories.RolUserRepository
	userRepo    repositories.Repository[entities.User]
	rolRepo     repositories.Repository[entities.Rol]
}

// NewRolUserService cria um novo RolUserService
func NewRolUserService(
	rolUserRepo repositories.RolUserRepository,
	userRepo repositories.Repository[entities.User],
	rolRepo repositories.Repository[entities.Rol],
	logger ports.Logger,
) *RolUserService {
	return &RolUserService{
		CrudService: NewCrudService[dto.RolUserDTO, entities.RolUser](rolUserRepo, rolUserMapper{}, logger, "RolUser"),
		rolUserRepo: rolUserRepo,
		userRepo:    userRepo,
		rolRepo:     rolRepo,
	}
}

// Create valida as foreign keys (positivas e existentes) antes de
// gravar a junção
func (s *RolUserService) Create(ctx context.Context, d dto.RolUserDTO) (dto.RolUserDTO, error) {
	if err := (rolUserMapper{}).Validate(d); err != nil {
		return dto.RolUserDTO{}, err
	}

	user, err := s.userRepo.GetByID(ctx, d.UserID)
	if err != nil {
		s.logger.Error("failed to check referenced user", "user_id", d.UserID, "error", err)
		return dto.RolUserDTO{}, err
	}
	if user == nil {
		return dto.RolUserDTO{}, domainerrors.NewNotFoundError("User", d.UserID)
	}

	rol, err := s.rolRepo.GetByID(ctx, d.RolID)
	if err != nil {
		s.logger.Error("failed to check referenced rol", "rol_id", d.RolID, "error", err)
		return dto.RolUserDTO{}, err
	}
	if rol == nil {
		return dto.RolUserDTO{}, domainerrors.NewNotFoundError("Rol", d.RolID)
	}

	return s.CrudService.Create(ctx, d)
}

// GetByUserID retorna as atribuições ativas de um usuário
func (s *RolUserService) GetByUserID(ctx context.Context, userID int64) ([]dto.RolUserDTO, error) {
	rows, err := s.rolUserRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list rol assignments", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]dto.RolUserDTO, 0, len(rows))
	for i := range rows {
		result = append(result, rolUserMapper{}.ToDTO(&rows[i]))
	}
	return result, nil
}
