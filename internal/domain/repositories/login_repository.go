package repositories

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
)

// LoginRepository define a persistência de credenciais de usuários
type LoginRepository interface {
	Repository[entities.Login]

	// GetByUsername retorna o login ativo com o username, ou
	// (nil, nil) quando não existe
	GetByUsername(ctx context.Context, username string) (*entities.Login, error)
}

// WorkerLoginRepository define a persistência de credenciais de workers
type WorkerLoginRepository interface {
	Repository[entities.WorkerLogin]

	// GetByUsername retorna o login ativo com o username, ou
	// (nil, nil) quando não existe
	GetByUsername(ctx context.Context, username string) (*entities.WorkerLogin, error)
}
