// Package seeders fills the database with the baseline records the app
// expects: the admin account and a couple of demo products.
package seeders

import (
	"gorm.io/gorm"

	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/app/services"
	"github.com/bkormos/portico/config"
	"github.com/bkormos/portico/pkg/logger"
)

type Seeder interface {
	Name() string
	Seed(db *gorm.DB) error
}

// Run executes every registered seeder in order.
func Run(db *gorm.DB) error {
	all := []Seeder{
		adminSeeder{},
		productSeeder{},
	}
	for _, s := range all {
		if err := s.Seed(db); err != nil {
			return err
		}
		logger.Info("seeded", "seeder", s.Name())
	}
	return nil
}

type adminSeeder struct{}

func (adminSeeder) Name() string { return "admin" }

func (adminSeeder) Seed(db *gorm.DB) error {
	auth := services.NewAuthService(repositories.NewUserRepository(db))
	return auth.BootstrapAdmin(config.AdminUsername(), config.AdminPassword())
}

type productSeeder struct{}

func (productSeeder) Name() string { return "products" }

// Seed inserts demo products once; it skips when the table already has rows.
func (productSeeder) Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []models.Product{
		{Name: "Notebook", Price: 4.50, Description: "A5 dotted notebook"},
		{Name: "Fountain pen", Price: 22.00, Description: "Fine nib, converter included"},
		{Name: "Desk lamp", Price: 39.90, Description: "Warm LED, adjustable arm"},
	}
	return db.Create(&demo).Error
}
