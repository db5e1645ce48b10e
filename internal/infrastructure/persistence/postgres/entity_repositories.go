package postgres

import (
	"gorm.io/gorm"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
)

// Constructors nomeados sobre o Repository genérico, um por entidade
// sem consultas próprias.

// NewUserRepository cria o repositório de usuários
func NewUserRepository(db *gorm.DB) repositories.Repository[entities.User] {
	return NewRepository[entities.User](db)
}

// NewWorkerRepository cria o repositório de workers
func NewWorkerRepository(db *gorm.DB) repositories.Repository[entities.Worker] {
	return NewRepository[entities.Worker](db)
}

// NewRolRepository cria o repositório de rols
func NewRolRepository(db *gorm.DB) repositories.Repository[entities.Rol] {
	return NewRepository[entities.Rol](db)
}

// NewModuleRepository cria o repositório de modules
func NewModuleRepository(db *gorm.DB) repositories.Repository[entities.Module] {
	return NewRepository[entities.Module](db)
}

// NewFormRepository cria o repositório de forms
func NewFormRepository(db *gorm.DB) repositories.Repository[entities.Form] {
	return NewRepository[entities.Form](db)
}

// NewPermissionRepository cria o repositório de permission bundles
func NewPermissionRepository(db *gorm.DB) repositories.Repository[entities.Permission] {
	return NewRepository[entities.Permission](db)
}
