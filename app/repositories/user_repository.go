package repositories

import (
	"errors"

	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/pkg/orm"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when a username lookup finds no row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername looks up a user by their unique username.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := orm.New(r.db).Model(&models.User{}).Where("username = ?", username).First(&user)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.New(r.db).Create(user)
}

// All returns every user, for the read-only aggregate view.
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	err := orm.New(r.db).Model(&models.User{}).Get(&users)
	return users, err
}
