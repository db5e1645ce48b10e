package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// FormModuleRepository implementa repositories.FormModuleRepository
type FormModuleRepository struct {
	*Repository[entities.FormModule]
}

// NewFormModuleRepository cria um novo FormModuleRepository
func NewFormModuleRepository(db *gorm.DB) repositories.FormModuleRepository {
	return &FormModuleRepository{Repository: NewRepository[entities.FormModule](db)}
}

func (r *FormModuleRepository) GetByModuleIDAndFormID(ctx context.Context, moduleID, formID int64) (*entities.FormModule, error) {
	var row entities.FormModule

	err := r.getDB(ctx).WithContext(ctx).
		Where("module_id = ? AND form_id = ? AND deleted_at IS NULL", moduleID, formID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *FormModuleRepository) GetByFormID(ctx context.Context, formID int64) ([]entities.FormModule, error) {
	var rows []entities.FormModule

	err := r.getDB(ctx).WithContext(ctx).
		Where("form_id = ? AND deleted_at IS NULL", formID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
