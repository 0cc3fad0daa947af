package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

// withRegistry swaps the global registry for the test's own entries.
func withRegistry(t *testing.T, entries ...registered) {
	t.Helper()

	saved := registry
	registry = entries
	t.Cleanup(func() { registry = saved })
}

func TestRunAppliesPending(t *testing.T) {
	withRegistry(t, registered{name: "001_create_widgets", m: createWidgets{}})
	db := testDB(t)
	r := New(db)

	require.NoError(t, r.Run())
	assert.True(t, db.Migrator().HasTable(&widget{}))

	status, err := r.Status()
	require.NoError(t, err)
	assert.True(t, status["001_create_widgets"])
}

func TestRunIsIdempotent(t *testing.T) {
	withRegistry(t, registered{name: "001_create_widgets", m: createWidgets{}})
	db := testDB(t)
	r := New(db)

	require.NoError(t, r.Run())
	require.NoError(t, r.Run())

	pending, err := r.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	var count int64
	require.NoError(t, db.Table("portico_migrations").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRollbackReversesLastBatch(t *testing.T) {
	withRegistry(t, registered{name: "001_create_widgets", m: createWidgets{}})
	db := testDB(t)
	r := New(db)

	require.NoError(t, r.Run())
	require.NoError(t, r.Rollback())

	assert.False(t, db.Migrator().HasTable(&widget{}))

	pending, err := r.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_widgets"}, pending)
}

func TestRollbackOnEmptyIsNoop(t *testing.T) {
	withRegistry(t)
	r := New(testDB(t))
	assert.NoError(t, r.Rollback())
}
