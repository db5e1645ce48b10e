package repositories

import (
	"context"
	"time"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// ActivityLogRepository define a persistência do registro de
// atividades. Append-only: não há update nem delete.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entities.ActivityLog) error
	GetByID(ctx context.Context, id int64) (*entities.ActivityLog, error)
	GetRecent(ctx context.Context, limit, offset int) ([]entities.ActivityLog, error)
	GetByUser(ctx context.Context, userID int64, limit, offset int) ([]entities.ActivityLog, error)
	GetByEntityType(ctx context.Context, entityType string, limit, offset int) ([]entities.ActivityLog, error)
	GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]entities.ActivityLog, error)
}
