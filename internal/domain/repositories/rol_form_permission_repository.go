package repositories

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// RolFormPermissionRepository define a persistência das concessões
// Rol×Form×Permission
type RolFormPermissionRepository interface {
	Repository[entities.RolFormPermission]

	// GetByRolID retorna as concessões ativas de um rol, na ordem de
	// inserção; entrada da projeção de menu
	GetByRolID(ctx context.Context, rolID int64) ([]entities.RolFormPermission, error)
}
