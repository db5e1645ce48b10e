package entities

import "time"

// Rol representa um papel (role) atribuível a usuários
type Rol struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:varchar(100);not null;index"`
	Description string     `gorm:"type:varchar(500)"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt   *time.Time `gorm:"index"` // Soft delete
}

func (Rol) TableName() string {
	return "rols"
}

func (r Rol) GetID() int64 {
	return r.ID
}

// IsDeleted verifica se o rol foi deletado (soft delete)
func (r *Rol) IsDeleted() bool {
	return r.DeletedAt != nil
}

// SoftDelete marca o rol como deletado
func (r *Rol) SoftDelete() {
	softDelete(&r.DeletedAt)
}
