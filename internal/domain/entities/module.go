package entities

import "time"

// Module representa um agrupamento de forms para navegação
type Module struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Code      string     `gorm:"type:varchar(50);not null;index"`
	Active    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (Module) TableName() string {
	return "modules"
}

func (m Module) GetID() int64 {
	return m.ID
}

// IsDeleted verifica se o module foi deletado (soft delete)
func (m *Module) IsDeleted() bool {
	return m.DeletedAt != nil
}

// SoftDelete marca o module como deletado
func (m *Module) SoftDelete() {
	softDelete(&m.DeletedAt)
}
