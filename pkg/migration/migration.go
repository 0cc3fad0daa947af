// Package migration provides a batch-tracked database migration runner.
//
// Each migration file registers itself from init():
//
//	func init() {
//	    migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
//	}
//
// The runner records applied migrations in the portico_migrations table so
// startup can apply the schema idempotently.
package migration

import (
	"fmt"
	"sort"
	"time"

	"github.com/bkormos/portico/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// record tracks one applied migration.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "portico_migrations" }

type registered struct {
	name string
	m    Migration
}

var registry []registered

// Register adds a migration to the global registry. Use a timestamp-prefixed
// name so lexicographic order matches chronological order.
func Register(name string, m Migration) {
	registry = append(registry, registered{name: name, m: m})
}

// Runner executes and tracks migrations against an explicit handle.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&record{})
}

// Pending returns registered migrations that have not been applied yet,
// sorted by name.
func (r *Runner) Pending() ([]string, error) {
	var ran []record
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, err
	}

	ranSet := make(map[string]bool, len(ran))
	for _, rec := range ran {
		ranSet[rec.Name] = true
	}

	var pending []string
	for _, reg := range registry {
		if !ranSet[reg.name] {
			pending = append(pending, reg.name)
		}
	}
	sort.Strings(pending)
	return pending, nil
}

// Run applies all pending migrations in a single batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.Pending()
	if err != nil {
		return fmt.Errorf("migration: fetch pending: %w", err)
	}

	if len(pending) == 0 {
		logger.Info("migration: nothing to migrate")
		return nil
	}

	batch := r.nextBatch()
	byName := registryByName()

	for _, name := range pending {
		logger.Info("migration: running", "name", name)

		if err := byName[name].Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", name, err)
		}

		if err := r.db.Create(&record{Name: name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", name, err)
		}
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses all migrations from the most recent batch.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	var maxBatch struct{ Max int }
	r.db.Model(&record{}).Select("MAX(batch) as max").Scan(&maxBatch)
	if maxBatch.Max == 0 {
		logger.Info("migration: nothing to roll back")
		return nil
	}

	var records []record
	if err := r.db.Where("batch = ?", maxBatch.Max).
		Order("id desc").
		Find(&records).Error; err != nil {
		return err
	}

	byName := registryByName()
	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration: cannot rollback %s: not registered", rec.Name)
		}

		logger.Info("migration: rolling back", "name", rec.Name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&rec).Error; err != nil {
			return err
		}
	}

	return nil
}

// Status returns "name → applied?" pairs for every registered migration.
func (r *Runner) Status() (map[string]bool, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}

	var ran []record
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, err
	}

	ranSet := make(map[string]bool, len(ran))
	for _, rec := range ran {
		ranSet[rec.Name] = true
	}

	status := make(map[string]bool, len(registry))
	for _, reg := range registry {
		status[reg.name] = ranSet[reg.name]
	}
	return status, nil
}

func (r *Runner) nextBatch() int {
	var maxBatch struct{ Max int }
	r.db.Model(&record{}).Select("MAX(batch) as max").Scan(&maxBatch)
	return maxBatch.Max + 1
}

func registryByName() map[string]Migration {
	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}
	return byName
}
