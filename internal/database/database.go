package database

import (
	"fmt"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/config"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
	"github.com/emarifer/go-gin-htmx-todoapp/pkg/logger"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database selected by DB_DRIVER. The default is a
// single-file SQLite store; MySQL and PostgreSQL accept a full DSN in
// DATABASE_URL.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log := logger.Get()
	log.Info().Str("driver", cfg.DBDriver).Msg("database connection established")
	return nil
}

// Migrate creates/updates the users and todos tables.
func Migrate() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Todo{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log := logger.Get()
	log.Info().Msg("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
