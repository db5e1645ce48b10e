package ports

import "github.com/rafabene/adminpro-backend/internal/domain/entities"

// ActivityPublisher recebe cada registro de atividade recém-gravado.
// Implementações não podem bloquear o caminho da requisição.
type ActivityPublisher interface {
	Publish(log entities.ActivityLog)
}
