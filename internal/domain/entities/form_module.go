package entities

import "time"

// FormModule é a junção Form↔Module: agrupa um form sob um module.
// O par (ModuleID, FormID) é único entre linhas ativas.
type FormModule struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	FormID    int64      `gorm:"not null;index"`
	ModuleID  int64      `gorm:"not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (FormModule) TableName() string {
	return "form_modules"
}

func (fm FormModule) GetID() int64 {
	return fm.ID
}

// IsDeleted verifica se a associação foi deletada (soft delete)
func (fm *FormModule) IsDeleted() bool {
	return fm.DeletedAt != nil
}

// SoftDelete marca a associação como deletada
func (fm *FormModule) SoftDelete() {
	softDelete(&fm.DeletedAt)
}
