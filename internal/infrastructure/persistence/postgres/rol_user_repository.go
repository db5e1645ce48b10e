package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// RolUserRepository implementa repositories.RolUserRepository
type RolUserRepository struct {
	*Repository[entities.RolUser]
}

// NewRolUserRepository cria um novo RolUserRepository
func NewRolUserRepository(db *gorm.DB) repositories.RolUserRepository {
	return &RolUserRepository{Repository: NewRepository[entities.RolUser](db)}
}

func (r *RolUserRepository) GetByUserID(ctx context.Context, userID int64) ([]entities.RolUser, error) {
	var rows []entities.RolUser

	err := r.getDB(ctx).WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
