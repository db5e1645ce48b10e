package entities

import "time"

// Entity é implementada por todas as entidades persistidas.
// O ID é sempre positivo após a criação.
type Entity interface {
	GetID() int64
}

// softDelete marca o timestamp de deleção como agora
func softDelete(deletedAt **time.Time) {
	now := time.Now()
	*deletedAt = &now
}
