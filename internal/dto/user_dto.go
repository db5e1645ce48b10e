package dto

import "time"

// UserDTO é o registro plano de usuário trocado com o transporte.
// Password é write-only: carrega o hash a persistir e nunca volta na
// resposta.
type UserDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
