package entities

import "time"

// Form representa uma tela/recurso da aplicação protegida pelo RBAC
type Form struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Code      string     `gorm:"type:varchar(50);not null;index"`
	Active    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (Form) TableName() string {
	return "forms"
}

func (f Form) GetID() int64 {
	return f.ID
}

// IsDeleted verifica se o form foi deletado (soft delete)
func (f *Form) IsDeleted() bool {
	return f.DeletedAt != nil
}

// SoftDelete marca o form como deletado
func (f *Form) SoftDelete() {
	softDelete(&f.DeletedAt)
}
