package models

import "gorm.io/gorm"

// User is the account model for authentication and order ownership.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string `gorm:"size:128;not null" json:"-"` // bcrypt, never serialised
	FirstName    string `gorm:"size:50" json:"first_name"`
	LastName     string `gorm:"size:50" json:"last_name"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Reviews []Review `json:"-"`
	Orders  []Order  `json:"-"`
}
