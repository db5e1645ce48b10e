package services

import (
	"context"
	"strings"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// EntityMapper liga um DTO à sua entidade: regras de validação e
// mapeamento nos dois sentidos. Cada service fornece o seu.
type EntityMapper[D any, E entities.Entity] interface {
	Validate(d D) error
	ToEntity(d D) *E
	ToDTO(e *E) D
}

// CrudService orquestra o protocolo validar → mapear → persistir →
// mapear de volta sobre o Repository genérico. Leituras nunca
// validam; ausência em GetByID é DTO nulo, não erro.
type CrudService[D any, E entities.Entity] struct {
	repo   repositories.Repository[E]
	mapper EntityMapper[D, E]
	logger ports.Logger
	entity string
}

// NewCrudService cria um CrudService para uma entidade
func NewCrudService[D any, E entities.Entity](
	repo repositories.Repository[E],
	mapper EntityMapper[D, E],
	logger ports.Logger,
	entity string,
) *CrudService[D, E] {
	return &CrudService[D, E]{
		repo:   repo,
		mapper: mapper,
		logger: logger,
		entity: entity,
	}
}

// Create valida, persiste e retorna o DTO com id e timestamps
// atribuídos. Falha de validação ocorre antes de qualquer I/O.
func (s *CrudService[D, E]) Create(ctx context.Context, d D) (D, error) {
	var zero D
	if err := s.mapper.Validate(d); err != nil {
		return zero, err
	}

	entity := s.mapper.ToEntity(d)
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("failed to create entity", "entity", s.entity, "error", err)
		return zero, err
	}

	return s.mapper.ToDTO(entity), nil
}

// GetAll retorna os DTOs das linhas ativas
func (s *CrudService[D, E]) GetAll(ctx context.Context) ([]D, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list entities", "entity", s.entity, "error", err)
		return nil, err
	}

	result := make([]D, 0, len(rows))
	for i := range rows {
		result = append(result, s.mapper.ToDTO(&rows[i]))
	}
	return result, nil
}

// GetByID retorna (nil, nil) quando não há match ou a linha foi
// soft-deletada
func (s *CrudService[D, E]) GetByID(ctx context.Context, id int64) (*D, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get entity", "entity", s.entity, "id", id, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	d := s.mapper.ToDTO(entity)
	return &d, nil
}

// Update valida e substitui a linha por completo; false se o alvo não
// existe
func (s *CrudService[D, E]) Update(ctx context.Context, d D) (bool, error) {
	if err := s.mapper.Validate(d); err != nil {
		return false, err
	}

	entity := s.mapper.ToEntity(d)
	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		s.logger.Error("failed to update entity", "entity", s.entity, "error", err)
		return false, err
	}
	return updated, nil
}

// Delete faz soft delete. Falhas de storage são registradas no log e
// rebaixadas para false: o chamador não distingue not-found de falha
// de storage neste caminho, e a camada de transporte depende disso.
func (s *CrudService[D, E]) Delete(ctx context.Context, id int64) bool {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete entity", "entity", s.entity, "id", id, "error", err)
		return false
	}
	return deleted
}

// PermanentDelete remove fisicamente a linha; mesmo contrato booleano
// do Delete
func (s *CrudService[D, E]) PermanentDelete(ctx context.Context, id int64) bool {
	deleted, err := s.repo.PermanentDelete(ctx, id)
	if err != nil {
		s.logger.Error("failed to permanently delete entity", "entity", s.entity, "id", id, "error", err)
		return false
	}
	return deleted
}

// requireField rejeita campos obrigatórios vazios; whitespace conta
// como vazio
func requireField(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.NewRequiredFieldError(field)
	}
	return nil
}

// requirePositiveID rejeita foreign keys não positivas
func requirePositiveID(id int64, field string) error {
	if id <= 0 {
		return domainerrors.NewValidationError(field, "must be a positive id")
	}
	return nil
}
