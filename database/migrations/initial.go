package migrations

import (
	"gorm.io/gorm"

	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/pkg/migration"
)

func init() {
	migration.Register("2024_01_01_000001_create_users_table", createUsersTable{})
	migration.Register("2024_01_01_000002_create_messages_table", createMessagesTable{})
	migration.Register("2024_01_01_000003_create_products_table", createProductsTable{})
}

type createUsersTable struct{}

func (createUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (createUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.User{})
}

type createMessagesTable struct{}

func (createMessagesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Message{})
}

func (createMessagesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Message{})
}

type createProductsTable struct{}

func (createProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (createProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}
