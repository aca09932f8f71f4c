package model

import (
	"time"

	"gorm.io/gorm"
)

// StatusRecord is a short-lived status post, table status_record.
// Rows past ExpiresAt are filtered out at read time.
type StatusRecord struct {
	gorm.Model
	UserId    string    `gorm:"column:user_id;index;type:char(20);not null"`
	Text      string    `gorm:"column:text;type:varchar(300);not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;index;not null"`
}

func (StatusRecord) TableName() string {
	return "status_record"
}
