package services

import (
	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// workerMapper implementa as regras de validação e mapeamento de Worker
type workerMapper struct{}

func (workerMapper) Validate(d dto.WorkerDTO) error {
	if err := requireField(d.FirstName, "FirstName"); err != nil {
		return err
	}
	if err := requireField(d.LastName, "LastName"); err != nil {
		return err
	}
	if err := requireField(d.IdentityDocument, "IdentityDocument"); err != nil {
		return err
	}
	if err := requireField(d.JobTitle, "JobTitle"); err != nil {
		return err
	}
	return requireField(d.Email, "Email")
}

func (workerMapper) ToEntity(d dto.WorkerDTO) *entities.Worker {
	return &entities.Worker{
		ID:               d.ID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		IdentityDocument: d.IdentityDocument,
		JobTitle:         d.JobTitle,
		Email:            d.Email,
		Phone:            d.Phone,
		HireDate:         d.HireDate,
		CreatedAt:        d.CreatedAt,
	}
}

func (workerMapper) ToDTO(e *entities.Worker) dto.WorkerDTO {
	return dto.WorkerDTO{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		IdentityDocument: e.IdentityDocument,
		JobTitle:         e.JobTitle,
		Email:            e.Email,
		Phone:            e.Phone,
		HireDate:         e.HireDate,
		CreatedAt:        e.CreatedAt,
	}
}

// WorkerService gerencia o CRUD de workers
type WorkerService struct {
	*CrudService[dto.WorkerDTO, entities.Worker]
}

// NewWorkerService cria um novo WorkerService
func NewWorkerService(repo repositories.Repository[entities.Worker], logger ports.Logger) *WorkerService {
	return &WorkerService{
		CrudService: NewCrudService(repo, workerMapper{}, logger, "Worker"),
	}
}
