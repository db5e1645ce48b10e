package repositories

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// RolUserRepository define a persistência da junção User↔Rol
type RolUserRepository interface {
	Repository[entities.RolUser]

	// GetByUserID retorna as atribuições ativas de um usuário
	GetByUserID(ctx context.Context, userID int64) ([]entities.RolUser, error)
}
