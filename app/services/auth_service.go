package services

import (
	"errors"
	"fmt"

	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/pkg/auth"
	"github.com/bkormos/portico/pkg/logger"
)

// ErrDuplicateUsername is returned when registering a username that exists.
var ErrDuplicateUsername = errors.New("username already taken")

// ErrInvalidCredentials is returned by Verify for an unknown username and
// for a wrong password alike; the caller-facing layer must not be able to
// tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService is the credential store: it creates and verifies
// password-protected identities. Raw passwords are hashed before they are
// persisted and never stored or logged.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account with role user. The role is fixed;
// registration can never produce an admin.
func (s *AuthService) Register(username, rawPassword string) (models.User, error) {
	if _, err := s.users.FindByUsername(username); err == nil {
		return models.User{}, ErrDuplicateUsername
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("auth: lookup %q: %w", username, err)
	}

	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("auth: create %q: %w", username, err)
	}
	return user, nil
}

// Verify checks a username/password pair against the stored hash.
// Both failure cases collapse into ErrInvalidCredentials.
func (s *AuthService) Verify(username, rawPassword string) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, rawPassword) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// BootstrapAdmin ensures the admin account exists. Idempotent by username
// lookup, so it is safe to call on every startup; an existing account is
// left untouched.
func (s *AuthService) BootstrapAdmin(username, rawPassword string) error {
	_, err := s.users.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("auth: bootstrap lookup: %w", err)
	}

	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return fmt.Errorf("auth: bootstrap hash: %w", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := s.users.Create(&admin); err != nil {
		return fmt.Errorf("auth: bootstrap create: %w", err)
	}

	logger.Info("bootstrap admin created", "username", username)
	return nil
}
