package services

import (
	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// userMapper implementa as regras de validação e mapeamento de User
type userMapper struct{}

func (userMapper) Validate(d dto.UserDTO) error {
	if err := requireField(d.Name, "Name"); err != nil {
		return err
	}
	return requireField(d.Email, "Email")
}

func (userMapper) ToEntity(d dto.UserDTO) *entities.User {
	return &entities.User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

func (userMapper) ToDTO(e *entities.User) dto.UserDTO {
	// Password nunca volta para o chamador
	return dto.UserDTO{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
}

// UserService gerencia o CRUD de usuários
type UserService struct {
	*CrudService[dto.UserDTO, entities.User]
}

// NewUserService cria um novo UserService
func NewUserService(repo repositories.Repository[entities.User], logger ports.Logger) *UserService {
	return &UserService{
		CrudService: NewCrudService(repo, userMapper{}, logger, "User"),
	}
}
