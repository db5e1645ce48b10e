package entities

import "time"

// User representa um usuário do sistema
type User struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(255);not null;index"`
	Password  string     `gorm:"type:varchar(255)"` // hash, nunca texto plano
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (User) TableName() string {
	return "users"
}

func (u User) GetID() int64 {
	return u.ID
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	softDelete(&u.DeletedAt)
}
