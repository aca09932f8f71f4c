package model

import (
	"gorm.io/gorm"
)

// Contact is an asymmetric list membership: UserId keeps ContactId in
// their list, with no mutual-consent handshake. Table contact.
type Contact struct {
	gorm.Model
	UserId    string `gorm:"column:user_id;index;type:char(20);not null"`
	ContactId string `gorm:"column:contact_id;index;type:char(20);not null"`
}

func (Contact) TableName() string {
	return "contact"
}
