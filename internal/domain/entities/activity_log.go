package entities

import "time"

// ActivityLog registra quem fez o quê; append-only, sem soft delete
type ActivityLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null;index"`
	UserName   string    `gorm:"type:varchar(255);not null"`
	Action     string    `gorm:"type:varchar(50);not null"`
	EntityType string    `gorm:"type:varchar(100);not null;index"`
	EntityID   int64     `gorm:"not null"`
	Details    string    `gorm:"type:text"`
	Timestamp  time.Time `gorm:"not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (a ActivityLog) GetID() int64 {
	return a.ID
}
