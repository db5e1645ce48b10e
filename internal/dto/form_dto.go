package dto

import "time"

// FormDTO é o registro plano de form trocado com o transporte
type FormDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
