package entities

import "time"

// Login representa as credenciais de acesso de um usuário
type Login struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Username  string     `gorm:"type:varchar(100);not null;index"`
	Password  string     `gorm:"type:varchar(255);not null"` // hash, nunca texto plano
	Status    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (Login) TableName() string {
	return "logins"
}

func (l Login) GetID() int64 {
	return l.ID
}

// IsDeleted verifica se o login foi deletado (soft delete)
func (l *Login) IsDeleted() bool {
	return l.DeletedAt != nil
}

// SoftDelete marca o login como deletado
func (l *Login) SoftDelete() {
	softDelete(&l.DeletedAt)
}
