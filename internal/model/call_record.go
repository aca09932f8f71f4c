package model

import (
	"time"

	"gorm.io/gorm"
)

// CallRecord logs a voice or video call, table call_record.
type CallRecord struct {
	gorm.Model
	CallerId string `gorm:"column:caller_id;index;type:char(20);not null"`
	CalleeId string `gorm:"column:callee_id;index;type:char(20);not null"`

	// Kind: 0 voice, 1 video.
	Kind int8 `gorm:"column:kind;not null"`

	// Outcome: 0 answered, 1 missed, 2 declined.
	Outcome int8 `gorm:"column:outcome;not null"`

	StartedAt       time.Time `gorm:"column:started_at;not null"`
	DurationSeconds int       `gorm:"column:duration_seconds;not null"`
}

func (CallRecord) TableName() string {
	return "call_record"
}
