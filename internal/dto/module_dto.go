package dto

import "time"

// ModuleDTO é o registro plano de module trocado com o transporte
type ModuleDTO struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
