package services

import (
	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// formMapper implementa as regras de validação e mapeamento de Form
type formMapper struct{}

func (formMapper) Validate(d dto.FormDTO) error {
	if err := requireField(d.Name, "Name"); err != nil {
		return err
	}
	return requireField(d.Code, "Code")
}

func (formMapper) ToEntity(d dto.FormDTO) *entities.Form {
	return &entities.Form{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}

func (formMapper) ToDTO(e *entities.Form) dto.FormDTO {
	return dto.FormDTO{
		ID:        e.ID,
		Name:      e.Name,
		Code:      e.Code,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
	}
}

// FormService gerencia o CRUD de forms
type FormService struct {
	*CrudService[dto.FormDTO, entities.Form]
}

// NewFormService cria um novo FormService
func NewFormService(repo repositories.Repository[entities.Form], logger ports.Logger) *FormService {
	return &FormService{
		CrudService: NewCrudService(repo, formMapper{}, logger, "Form"),
	}
}
