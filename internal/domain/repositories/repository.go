package repositories

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// Repository define o contrato genérico de persistência para uma
// entidade. Implementações concretas devem honrar a semântica de soft
// delete em GetAll/GetByID.
type Repository[E entities.Entity] interface {
	// Create persiste a entidade e atribui id e timestamps
	Create(ctx context.Context, entity *E) error

	// GetAll retorna apenas linhas não soft-deletadas
	GetAll(ctx context.Context) ([]E, error)

	// GetByID retorna (nil, nil) quando não há match ou a linha foi
	// soft-deletada; ausência não é erro
	GetByID(ctx context.Context, id int64) (*E, error)

	// Update substitui a linha por completo; false se não encontrada
	Update(ctx context.Context, entity *E) (bool, error)

	// Delete faz soft delete; false se não encontrada
	Delete(ctx context.Context, id int64) (bool, error)

	// PermanentDelete remove fisicamente a linha, ignorando o filtro
	// de soft delete; false se não encontrada
	PermanentDelete(ctx context.Context, id int64) (bool, error)
}
