package models

import "gorm.io/gorm"

// Account roles. Exactly these two values exist.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account row. Accounts are created at registration (role user)
// or by the startup bootstrap (role admin) and never updated or deleted.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // bcrypt, never the raw password
	Role         string `gorm:"size:50;not null;default:user" json:"role"`
}
