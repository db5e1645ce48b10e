package dto

import "time"

// PermissionDTO é o bundle de capacidades trocado com o transporte
type PermissionDTO struct {
	ID        int64     `json:"id"`
	CanRead   bool      `json:"can_read"`
	CanCreate bool      `json:"can_create"`
	CanUpdate bool      `json:"can_update"`
	CanDelete bool      `json:"can_delete"`
	CreatedAt time.Time `json:"created_at"`
}
