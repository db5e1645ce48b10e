package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// Repository implementa repositories.Repository sobre GORM.
// O filtro de soft delete é aplicado manualmente (deleted_at IS NULL)
// para que PermanentDelete e consultas cruas enxerguem linhas
// soft-deletadas.
type Repository[E entities.Entity] struct {
	db *gorm.DB
}

// NewRepository cria um repositório genérico para a entidade E
func NewRepository[E entities.Entity](db *gorm.DB) *Repository[E] {
	return &Repository[E]{db: db}
}

func (r *Repository[E]) Create(ctx context.Context, entity *E) error {
	return r.getDB(ctx).WithContext(ctx).Create(entity).Error
}

func (r *Repository[E]) GetAll(ctx context.Context) ([]E, error) {
	var rows []E

	// Soft delete: ignorar registros deletados
	err := r.getDB(ctx).WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[E]) GetByID(ctx context.Context, id int64) (*E, error) {
	var row E

	// Soft delete: ignorar registros deletados
	err := r.getDB(ctx).WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository[E]) Update(ctx context.Context, entity *E) (bool, error) {
	// Select("*") força a escrita de campos zero (full replace)
	res := r.getDB(ctx).WithContext(ctx).
		Model(entity).
		Where("deleted_at IS NULL").
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(entity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[E]) Delete(ctx context.Context, id int64) (bool, error) {
	// Soft delete: marcar deleted_at ao invés de remover
	res := r.getDB(ctx).WithContext(ctx).
		Model(new(E)).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now().UTC())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[E]) PermanentDelete(ctx context.Context, id int64) (bool, error) {
	// Sem filtro de deleted_at: remove inclusive linhas soft-deletadas
	res := r.getDB(ctx).WithContext(ctx).
		Where("id = ?", id).
		Delete(new(E))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *Repository[E]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
