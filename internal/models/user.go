package models

import "time"

// User represents a registered account. The password field holds a
// bcrypt hash and is never serialized to callers.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName string    `json:"firstName" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
