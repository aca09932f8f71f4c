package model

import (
	"time"

	"gorm.io/gorm"
)

// Order status values. Transitions are validated in the order service:
// pending -> in progress | canceled, in progress -> completed | canceled,
// completed and canceled are terminal.
const (
	OrderStatusPending    int8 = 0
	OrderStatusInProgress int8 = 1
	OrderStatusCompleted  int8 = 2
	OrderStatusCanceled   int8 = 3
)

// OrderStatusName maps status values to their wire representation.
var OrderStatusName = map[int8]string{
	OrderStatusPending:    "pending",
	OrderStatusInProgress: "in progress",
	OrderStatusCompleted:  "completed",
	OrderStatusCanceled:   "canceled",
}

// Order is a placed SMM order, table order_record. The user fields are a
// snapshot taken at placement time so later profile edits do not rewrite
// order history.
type Order struct {
	gorm.Model

	// Uuid is "O" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	UserId       string `gorm:"column:user_id;index;type:char(20);not null"`
	UserNickname string `gorm:"column:user_nickname;type:varchar(30);not null"`
	UserEmail    string `gorm:"column:user_email;type:varchar(60);not null"`

	Platform    string `gorm:"column:platform;type:varchar(30);not null"`
	ServiceUuid string `gorm:"column:service_uuid;index;type:char(20);not null"`
	ServiceName string `gorm:"column:service_name;type:varchar(60);not null"`

	Quantity int `gorm:"column:quantity;not null"`

	// UnitPricePerK is copied from the catalog row at placement time;
	// TotalPrice = UnitPricePerK * Quantity / 1000, both in cents.
	UnitPricePerK int64 `gorm:"column:unit_price_per_k;not null"`
	TotalPrice    int64 `gorm:"column:total_price;not null"`

	// TargetUrl is the profile or post the purchased engagement targets.
	TargetUrl string `gorm:"column:target_url;type:varchar(255);not null"`

	PaymentMethod string `gorm:"column:payment_method;type:varchar(30);not null"`

	// ProofKey is the object-storage key of the proof-of-payment image.
	ProofKey string `gorm:"column:proof_key;type:varchar(255)"`

	Status int8 `gorm:"column:status;index;not null"`

	PlacedAt time.Time `gorm:"column:placed_at;not null"`
}

func (Order) TableName() string {
	return "order_record"
}
