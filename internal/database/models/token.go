package models

import (
	"time"
)

// TokenAuth binds an opaque bearer token to a user.
// Useful for mobile and IoT clients; browsers should prefer session auth.
type TokenAuth struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"size:255;not null;uniqueIndex:token_auth_token_unique"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}

func (TokenAuth) TableName() string {
	return "token_auth"
}
