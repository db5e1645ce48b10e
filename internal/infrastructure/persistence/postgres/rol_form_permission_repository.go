package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// RolFormPermissionRepository implementa
// repositories.RolFormPermissionRepository
type RolFormPermissionRepository struct {
	*Repository[entities.RolFormPermission]
}

// NewRolFormPermissionRepository cria um novo RolFormPermissionRepository
func NewRolFormPermissionRepository(db *gorm.DB) repositories.RolFormPermissionRepository {
	return &RolFormPermissionRepository{Repository: NewRepository[entities.RolFormPermission](db)}
}

func (r *RolFormPermissionRepository) GetByRolID(ctx context.Context, rolID int64) ([]entities.RolFormPermission, error) {
	var rows []entities.RolFormPermission

	// Ordem de inserção: a projeção de menu preserva esta ordem
	err := r.getDB(ctx).WithContext(ctx).
		Where("rol_id = ? AND deleted_at IS NULL", rolID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
