package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/app/repositories"
)

func newService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewAuthService(repositories.NewUserRepository(db))
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newService(t)

	user, err := svc.Register("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newService(t)

	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other456")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	svc := newService(t)

	user, err := svc.Register("mallory", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestVerify(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	user, err := svc.Verify("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestVerifyFailuresAreIndistinguishable(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register("alice", "secret123")
	require.NoError(t, err)

	_, wrongPassword := svc.Verify("alice", "nope")
	_, unknownUser := svc.Verify("bob", "secret123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestBootstrapAdmin(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.BootstrapAdmin("admin", "admin123"))

	admin, err := svc.Verify("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestBootstrapAdminIsIdempotent(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.BootstrapAdmin("admin", "admin123"))
	require.NoError(t, svc.BootstrapAdmin("admin", "changed456"))

	// the existing account keeps its original password
	_, err := svc.Verify("admin", "admin123")
	assert.NoError(t, err)
	_, err = svc.Verify("admin", "changed456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
