package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// loginMapper implementa as regras de validação e mapeamento de Login.
// O DTO carrega o hash da senha nos dois sentidos: este registro é a
// forma de armazenamento de credenciais, nenhum algoritmo vive aqui.
type loginMapper struct{}

func (loginMapper) Validate(d dto.LoginDTO) error {
	if err := requireField(d.Username, "Username"); err != nil {
		return err
	}
	return requireField(d.Password, "Password")
}

func (loginMapper) ToEntity(d dto.LoginDTO) *entities.Login {
	return &entities.Login{
		ID:        d.ID,
		Username:  d.Username,
		Password:  d.Password,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func (loginMapper) ToDTO(e *entities.Login) dto.LoginDTO {
	return dto.LoginDTO{
		ID:        e.ID,
		Username:  e.Username,
		Password:  e.Password,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

// LoginService gerencia o CRUD de credenciais de usuários
type LoginService struct {
	*CrudService[dto.LoginDTO, entities.Login]
	loginRepo repositories.LoginRepository
}

// NewLoginService cria um novo LoginService
func NewLoginService(repo repositories.LoginRepository, logger ports.Logger) *LoginService {
	return &LoginService{
		CrudService: NewCrudService[dto.LoginDTO, entities.Login](repo, loginMapper{}, logger, "Login"),
		loginRepo:   repo,
	}
}

// GetByUsername retorna o login ativo com o username, ou (nil, nil)
// quando não existe
func (s *LoginService) GetByUsername(ctx context.Context, username string) (*dto.LoginDTO, error) {
	entity, err := s.loginRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("failed to get login by username", "username", username, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	d := loginMapper{}.ToDTO(entity)
	return &d, nil
}
