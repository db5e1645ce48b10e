package repositories

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// FormModuleRepository define a persistência da junção Form↔Module
type FormModuleRepository interface {
	Repository[entities.FormModule]

	// GetByModuleIDAndFormID retorna a associação ativa para o par,
	// ou (nil, nil) quando não existe; usada como checagem de
	// unicidade antes do create
	GetByModuleIDAndFormID(ctx context.Context, moduleID, formID int64) (*entities.FormModule, error)

	// GetByFormID retorna as associações ativas de um form
	GetByFormID(ctx context.Context, formID int64) ([]entities.FormModule, error)
}
