package entities

import "time"

// RolFormPermission concede um bundle de Permission a um Rol sobre um Form
type RolFormPermission struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	RolID        int64      `gorm:"not null;index"`
	FormID       int64      `gorm:"not null;index"`
	PermissionID int64      `gorm:"not null;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt    *time.Time `gorm:"index"` // Soft delete
}

func (RolFormPermission) TableName() string {
	return "rol_form_permissions"
}

func (rfp RolFormPermission) GetID() int64 {
	return rfp.ID
}

// IsDeleted verifica se a concessão foi deletada (soft delete)
func (rfp *RolFormPermission) IsDeleted() bool {
	return rfp.DeletedAt != nil
}

// SoftDelete marca a concessão como deletada
func (rfp *RolFormPermission) SoftDelete() {
	softDelete(&rfp.DeletedAt)
}
