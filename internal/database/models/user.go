package models

import "time"

// User is the identity a token authenticates as. The table is owned by the
// surrounding application; token code only reads it.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;not null;uniqueIndex" validate:"required,min=3,max=100"`
	Email     string    `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Active    bool      `json:"active" gorm:"not null"`
	Admin     bool      `json:"admin" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
