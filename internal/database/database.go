package database

import (
	"fmt"
	"strings"

	"github.com/promostack/storefront-core/internal/config"
	"github.com/promostack/storefront-core/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a Postgres connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.ResolveDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

// IsUUIDSyntaxErr matches the Postgres error (SQLSTATE 22P02) raised when a
// non-UUID value, such as a slug, is compared against a uuid column. Lookups
// treat it as a miss, not a server failure.
func IsUUIDSyntaxErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "invalid input syntax for type uuid")
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.OptionModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ProductImageModel{},
		&models.ClickEventModel{},
		&models.LandingPageModel{},
		&models.FeatureModel{},
		&models.TestimonialModel{},
		&models.FAQModel{},
	)
}
