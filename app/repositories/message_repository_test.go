package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bkormos/portico/app/models"
)

func TestMessageCreateWithAndWithoutAuthor(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)

	alice := models.User{Username: "alice", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&alice).Error)

	withAuthor, err := repo.Create(&alice.ID, "Alice", "alice@example.com", "hello")
	require.NoError(t, err)
	require.NotNil(t, withAuthor.UserID)
	assert.Equal(t, alice.ID, *withAuthor.UserID)

	anon, err := repo.Create(nil, "Visitor", "v@example.com", "hi")
	require.NoError(t, err)
	assert.Nil(t, anon.UserID)
}

func TestMessageListAllJoinsAuthor(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)

	alice := models.User{Username: "alice", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&alice).Error)

	_, err := repo.Create(&alice.ID, "Alice", "alice@example.com", "first")
	require.NoError(t, err)
	_, err = repo.Create(nil, "Visitor", "v@example.com", "second")
	require.NoError(t, err)

	rows, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byBody := map[string]models.MessageWithAuthor{}
	for _, row := range rows {
		byBody[row.Body] = row
	}
	assert.Equal(t, "alice", byBody["first"].Username)
	assert.Empty(t, byBody["second"].Username)
}

func TestMessageListAllNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)

	old := models.Message{Name: "Old", Email: "o@example.com", Body: "old", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(&old).Error)
	recent := models.Message{Name: "New", Email: "n@example.com", Body: "new", CreatedAt: time.Now()}
	require.NoError(t, db.Create(&recent).Error)

	rows, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "new", rows[0].Body)
	assert.Equal(t, "old", rows[1].Body)
}

func TestMessageDeleteRemovesOneRow(t *testing.T) {
	db := testDB(t)
	repo := NewMessageRepository(db)

	first, err := repo.Create(nil, "A", "a@example.com", "one")
	require.NoError(t, err)
	_, err = repo.Create(nil, "B", "b@example.com", "two")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(first.ID))

	rows, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "two", rows[0].Body)

	_, err = repo.FindByID(first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
