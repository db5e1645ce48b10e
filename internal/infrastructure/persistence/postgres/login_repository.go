package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// LoginRepository implementa repositories.LoginRepository
type LoginRepository struct {
	*Repository[entities.Login]
}

// NewLoginRepository cria um novo LoginRepository
func NewLoginRepository(db *gorm.DB) repositories.LoginRepository {
	return &LoginRepository{Repository: NewRepository[entities.Login](db)}
}

func (r *LoginRepository) GetByUsername(ctx context.Context, username string) (*entities.Login, error) {
	var row entities.Login

	err := r.getDB(ctx).WithContext(ctx).
		Where("username = ? AND deleted_at IS NULL", username).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// WorkerLoginRepository implementa repositories.WorkerLoginRepository
type WorkerLoginRepository struct {
	*Repository[entities.WorkerLogin]
}

// NewWorkerLoginRepository cria um novo WorkerLoginRepository
func NewWorkerLoginRepository(db *gorm.DB) repositories.WorkerLoginRepository {
	return &WorkerLoginRepository{Repository: NewRepository[entities.WorkerLogin](db)}
}

func (r *WorkerLoginRepository) GetByUsername(ctx context.Context, username string) (*entities.WorkerLogin, error) {
	var row entities.WorkerLogin

	err := r.getDB(ctx).WithContext(ctx).
		Where("username = ? AND deleted_at IS NULL", username).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
