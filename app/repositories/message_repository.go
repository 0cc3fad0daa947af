package repositories

import (
	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/pkg/orm"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for Message.
// Access control is the caller's concern, not this component's.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create persists a contact message. userID may be nil for an authorless row.
func (r *MessageRepository) Create(userID *uint, name, email, body string) (models.Message, error) {
	msg := models.Message{
		UserID: userID,
		Name:   name,
		Email:  email,
		Body:   body,
	}
	err := orm.New(r.db).Create(&msg)
	return msg, err
}

// FindByID loads one message.
func (r *MessageRepository) FindByID(id uint) (models.Message, error) {
	var msg models.Message
	err := orm.New(r.db).Model(&models.Message{}).Where("id = ?", id).First(&msg)
	return msg, err
}

// ListAll returns every message, newest first, joined with the author's
// username. Messages whose author is gone keep an empty username.
func (r *MessageRepository) ListAll() ([]models.MessageWithAuthor, error) {
	var rows []models.MessageWithAuthor
	err := orm.New(r.db).
		Model(&models.Message{}).
		Select("messages.id, messages.name, messages.email, messages.message AS body, messages.created_at, users.username").
		Joins("LEFT JOIN users ON users.id = messages.user_id").
		Order("messages.created_at DESC, messages.id DESC").
		Scan(&rows)
	return rows, err
}

// Delete removes the message with the given id; other rows are untouched.
func (r *MessageRepository) Delete(id uint) error {
	_, err := orm.New(r.db).Where("id = ?", id).Delete(&models.Message{})
	return err
}
