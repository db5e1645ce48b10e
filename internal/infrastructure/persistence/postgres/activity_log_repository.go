package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// ActivityLogRepository implementa repositories.ActivityLogRepository.
// Append-only: sem update, sem delete, sem filtro de soft delete.
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository cria um novo ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) repositories.ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, log *entities.ActivityLog) error {
	return r.getDB(ctx).WithContext(ctx).Create(log).Error
}

func (r *ActivityLogRepository) GetByID(ctx context.Context, id int64) (*entities.ActivityLog, error) {
	var row entities.ActivityLog

	err := r.getDB(ctx).WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *ActivityLogRepository) GetRecent(ctx context.Context, limit, offset int) ([]entities.ActivityLog, error) {
	return r.find(ctx, r.getDB(ctx), limit, offset)
}

func (r *ActivityLogRepository) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]entities.ActivityLog, error) {
	return r.find(ctx, r.getDB(ctx).Where("user_id = ?", userID), limit, offset)
}

func (r *ActivityLogRepository) GetByEntityType(ctx context.Context, entityType string, limit, offset int) ([]entities.ActivityLog, error) {
	return r.find(ctx, r.getDB(ctx).Where("entity_type = ?", entityType), limit, offset)
}

func (r *ActivityLogRepository) GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]entities.ActivityLog, error) {
	return r.find(ctx, r.getDB(ctx).Where("timestamp >= ? AND timestamp <= ?", from, to), limit, offset)
}

// find aplica a ordenação e a paginação comuns às consultas
func (r *ActivityLogRepository) find(ctx context.Context, query *gorm.DB, limit, offset int) ([]entities.ActivityLog, error) {
	var rows []entities.ActivityLog

	err := query.WithContext(ctx).
		Model(&entities.ActivityLog{}).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ActivityLogRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
