package dto

import "time"

// RolUserDTO é a junção User↔Rol trocada com o transporte
type RolUserDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RolID     int64     `json:"rol_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FormModuleDTO é a junção Form↔Module trocada com o transporte
type FormModuleDTO struct {
	ID        int64     `json:"id"`
	FormID    int64     `json:"form_id"`
	ModuleID  int64     `json:"module_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RolFormPermissionDTO é a concessão Rol×Form×Permission trocada com
// o transporte
type RolFormPermissionDTO struct {
	ID           int64     `json:"id"`
	RolID        int64     `json:"rol_id"`
	FormID       int64     `json:"form_id"`
	PermissionID int64     `json:"permission_id"`
	CreatedAt    time.Time `json:"created_at"`
}
