package entities

import "time"

// Permission representa um conjunto de capacidades (read/create/update/delete)
// concedível por Rol×Form através de RolFormPermission
type Permission struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	CanRead   bool       `gorm:"not null;default:false"`
	CanCreate bool       `gorm:"not null;default:false"`
	CanUpdate bool       `gorm:"not null;default:false"`
	CanDelete bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (Permission) TableName() string {
	return "permissions"
}

func (p Permission) GetID() int64 {
	return p.ID
}

// IsDeleted verifica se a permission foi deletada (soft delete)
func (p *Permission) IsDeleted() bool {
	return p.DeletedAt != nil
}

// SoftDelete marca a permission como deletada
func (p *Permission) SoftDelete() {
	softDelete(&p.DeletedAt)
}
