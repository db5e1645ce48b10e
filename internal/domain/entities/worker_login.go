package entities

import "time"

// WorkerLogin representa as credenciais de acesso de um worker
type WorkerLogin struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	WorkerID  int64      `gorm:"not null;index"`
	Username  string     `gorm:"type:varchar(100);not null;index"`
	Password  string     `gorm:"type:varchar(255)"` // hash, nunca texto plano
	Status    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (WorkerLogin) TableName() string {
	return "worker_logins"
}

func (wl WorkerLogin) GetID() int64 {
	return wl.ID
}

// IsDeleted verifica se o login foi deletado (soft delete)
func (wl *WorkerLogin) IsDeleted() bool {
	return wl.DeletedAt != nil
}

// SoftDelete marca o login como deletado
func (wl *WorkerLogin) SoftDelete() {
	softDelete(&wl.DeletedAt)
}
