package entities

import "time"

// RolUser é a junção User↔Rol: atribui um rol a um usuário
type RolUser struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	UserID    int64      `gorm:"not null;index"`
	RolID     int64      `gorm:"not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (RolUser) TableName() string {
	return "rol_users"
}

func (ru RolUser) GetID() int64 {
	return ru.ID
}

// IsDeleted verifica se a atribuição foi deletada (soft delete)
func (ru *RolUser) IsDeleted() bool {
	return ru.DeletedAt != nil
}

// SoftDelete marca a atribuição como deletada
func (ru *RolUser) SoftDelete() {
	softDelete(&ru.DeletedAt)
}
