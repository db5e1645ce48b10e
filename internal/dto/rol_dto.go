package dto

import "time"

// RolDTO é o registro plano de rol trocado com o transporte
type RolDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
