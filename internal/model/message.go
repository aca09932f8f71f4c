package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// Message is a chat message, table message. Each message is stored once,
// keyed by the canonical conversation id of its two participants.
type Message struct {
	gorm.Model

	// Uuid is a snowflake id, unique per message.
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null"`

	// ConversationId is "C" + the two user uuids sorted lexicographically
	// and joined with '#', so both directions land in the same row set.
	ConversationId string `gorm:"column:conversation_id;index;type:char(42);not null"`

	// Type: 0 text, 1 image, 2 file.
	Type int8 `gorm:"column:type;not null"`

	Content string `gorm:"column:content;type:TEXT"`

	// Url points at the stored attachment for image/file messages.
	Url string `gorm:"column:url;type:varchar(255)"`

	SendId    string `gorm:"column:send_id;index;type:char(20);not null"`
	ReceiveId string `gorm:"column:receive_id;index;type:char(20);not null"`

	// ReadFlag: 0 unread, 1 read by the recipient.
	ReadFlag int8 `gorm:"column:read_flag;not null"`

	// Status: 0 stored, 1 delivered over the realtime channel.
	Status int8 `gorm:"column:status;not null"`

	SendAt sql.NullTime `gorm:"column:send_at"`
}

func (Message) TableName() string {
	return "message"
}
