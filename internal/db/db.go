package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/config"
	"github.com/bookably/appointment-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate wires the explicit join model and creates the schema. Shared with
// the test databases so both run against the same layout.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Provider{}, "Services", &models.ProviderService{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Provider{},
		&models.Service{},
		&models.ProviderService{},
		&models.Appointment{},
		&models.AuditLog{},
	)
}
