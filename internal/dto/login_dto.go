package dto

import "time"

// LoginDTO é o registro de credenciais de usuário trocado com o
// transporte. Password é write-only e carrega o hash a persistir.
type LoginDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkerLoginDTO é o registro de credenciais de worker trocado com o
// transporte
type WorkerLoginDTO struct {
	ID        int64     `json:"id"`
	WorkerID  int64     `json:"worker_id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
