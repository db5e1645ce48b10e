package dto

import "time"

// WorkerDTO é o registro plano de worker trocado com o transporte
type WorkerDTO struct {
	ID               int64     `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	IdentityDocument string    `json:"identity_document"`
	JobTitle         string    `json:"job_title"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	HireDate         time.Time `json:"hire_date"`
	CreatedAt        time.Time `json:"created_at"`
}
