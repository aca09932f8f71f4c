package model

import (
	"gorm.io/gorm"
)

// CatalogService is one purchasable service in the SMM catalog,
// table catalog_service. Price is per 1000 units in cents.
type CatalogService struct {
	gorm.Model

	// Uuid is "V" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	// Platform is the social network this service targets, e.g.
	// "instagram", "tiktok", "youtube".
	Platform string `gorm:"column:platform;index;type:varchar(30);not null"`

	Name string `gorm:"column:name;type:varchar(60);not null"`

	PricePerK int64 `gorm:"column:price_per_k;not null"`

	MinQuantity int `gorm:"column:min_quantity;not null;default:100"`
	MaxQuantity int `gorm:"column:max_quantity;not null;default:100000"`

	// Active: 0 hidden from the public listing, 1 orderable.
	Active int8 `gorm:"column:active;index;not null;default:1"`
}

func (CatalogService) TableName() string {
	return "catalog_service"
}
