package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/bkormos/portico/config"
	_ "github.com/bkormos/portico/database/migrations"
	"github.com/bkormos/portico/database/seeders"
	"github.com/bkormos/portico/pkg/database"
	"github.com/bkormos/portico/pkg/migration"
)

// openDB loads config and connects, shared by the db-facing commands.
func openDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return database.Connect()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			return migration.New(db).Run()
		},
	}
}

func migrateRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			return migration.New(db).Rollback()
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show which migrations have run",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}

			status, err := migration.New(db).Status()
			if err != nil {
				return err
			}
			for name, ran := range status {
				mark := "pending"
				if ran {
					mark = "ran"
				}
				fmt.Printf("%-60s %s\n", name, mark)
			}
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with baseline records",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := migration.New(db).Run(); err != nil {
				return err
			}
			return seeders.Run(db)
		},
	}
}
