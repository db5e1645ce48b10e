package entities

import "time"

// Worker representa o perfil de um colaborador
type Worker struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	FirstName        string     `gorm:"type:varchar(100);not null"`
	LastName         string     `gorm:"type:varchar(100);not null"`
	IdentityDocument string     `gorm:"type:varchar(50);not null;index"`
	JobTitle         string     `gorm:"type:varchar(100);not null"`
	Email            string     `gorm:"type:varchar(255);not null;index"`
	Phone            string     `gorm:"type:varchar(30)"`
	HireDate         time.Time  `gorm:"not null"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt        *time.Time `gorm:"index"` // Soft delete
}

func (Worker) TableName() string {
	return "workers"
}

func (w Worker) GetID() int64 {
	return w.ID
}

// IsDeleted verifica se o worker foi deletado (soft delete)
func (w *Worker) IsDeleted() bool {
	return w.DeletedAt != nil
}

// SoftDelete marca o worker como deletado
func (w *Worker) SoftDelete() {
	softDelete(&w.DeletedAt)
}
