package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// workerLoginMapper implementa as regras de validação e mapeamento de
// WorkerLogin. Só o Username é obrigatório.
type workerLoginMapper struct{}

func (workerLoginMapper) Validate(d dto.WorkerLoginDTO) error {
	return requireField(d.Username, "Username")
}

func (workerLoginMapper) ToEntity(d dto.WorkerLoginDTO) *entities.WorkerLogin {
	return &entities.WorkerLogin{
		ID:        d.ID,
		WorkerID:  d.WorkerID,
		Username:  d.Username,
		Password:  d.Password,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func (workerLoginMapper) ToDTO(e *entities.WorkerLogin) dto.WorkerLoginDTO {
	return dto.WorkerLoginDTO{
		ID:        e.ID,
		WorkerID:  e.WorkerID,
		Username:  e.Username,
		Password:  e.Password,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

// WorkerLoginService gerencia o CRUD de credenciais de workers
type WorkerLoginService struct {
	*CrudService[dto.WorkerLoginDTO, entities.WorkerLogin]
	workerLoginRepo repositories.WorkerLoginRepository
}

// NewWorkerLoginService cria um novo WorkerLoginService
func NewWorkerLoginService(repo repositories.WorkerLoginRepository, logger ports.Logger) *WorkerLoginService {
	return &WorkerLoginService{
		CrudService:     NewCrudService[dto.WorkerLoginDTO, entities.WorkerLogin](repo, workerLoginMapper{}, logger, "WorkerLogin"),
		workerLoginRepo: repo,
	}
}

// GetByUsername retorna o login ativo com o username, ou (nil, nil)
// quando não existe
func (s *WorkerLoginService) GetByUsername(ctx context.Context, username string) (*dto.WorkerLoginDTO, error) {
	entity, err := s.workerLoginRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("failed to get worker login by username", "username", username, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	d := workerLoginMapper{}.ToDTO(entity)
	return &d, nil
}
