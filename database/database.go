package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/abooda7m/HR-PROJECT/config"
	"github.com/abooda7m/HR-PROJECT/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate creates missing tables and reconciles columns for every sheet the
// system owns: reference data, the request ledger, the two disposition
// mirrors, the two rollup tables and the anchor audit log.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.Task{},
		&models.HourRequest{},
		&models.ApprovedRecord{},
		&models.RejectedRecord{},
		&models.LeaderboardRow{},
		&models.PeriodRow{},
		&models.PeriodAnchorReset{},
	)
}

// ReplaceTable swaps the entire contents of a table in one transaction.
// Reserved for derived tables (rollups, reference imports); ledger writes are
// row-level.
func ReplaceTable[T any](db *gorm.DB, rows []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var zero T
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&zero).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
