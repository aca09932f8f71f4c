// Package model defines the gorm entities.
package model

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfo is the account record, table user_info.
type UserInfo struct {
	gorm.Model

	// Uuid is "U" + date-prefixed random string, e.g. "U241230aB3dE9f01xyz".
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20)"`

	Nickname string `gorm:"column:nickname;uniqueIndex;type:varchar(30);not null"`

	// Email doubles as the login identifier and the admin-gate match key.
	Email string `gorm:"column:email;uniqueIndex;type:varchar(60);not null"`

	Telephone string `gorm:"column:telephone;type:varchar(20)"`

	Avatar string `gorm:"column:avatar;type:varchar(255);default:/static/avatars/default.png;not null"`

	Bio string `gorm:"column:bio;type:varchar(200)"`

	// Password stores the bcrypt hash, never plaintext.
	Password string `gorm:"column:password;type:varchar(100);not null"`

	LastOnlineAt  sql.NullTime `gorm:"column:last_online_at;type:datetime"`
	LastOfflineAt sql.NullTime `gorm:"column:last_offline_at;type:datetime"`

	// IsAdmin: 0 regular user, 1 administrator.
	IsAdmin int8 `gorm:"column:is_admin;not null"`

	// Status: 0 normal, 1 disabled.
	Status int8 `gorm:"column:status;index;not null"`

	// RawPassword receives the plaintext from the request layer and is
	// hashed into Password by BeforeSave. Never persisted or serialized.
	RawPassword string `gorm:"-" json:"-"`
}

func (UserInfo) TableName() string {
	return "user_info"
}

// BeforeSave hashes RawPassword into Password so callers never store
// plaintext by accident.
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *UserInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
