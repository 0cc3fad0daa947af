package models

import (
	"time"
)

// Message is a contact-form submission. The author reference is nullable
// and deliberately loose: deleting an account leaves its messages behind.
type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Body      string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageWithAuthor is the row shape of the messages listing, joined with
// the author's username (empty for authorless rows).
type MessageWithAuthor struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
