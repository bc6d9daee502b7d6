package postgres

import (
	"fmt"
	"time"

	"crown/internal/adapters/out/postgres/deliveryrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings holds the connection parameters of the PostgreSQL server.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings in key/value form, targeting database dbName.
func (s Settings) DSN(dbName string) string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		s.Host, s.Port, s.User, s.Password, dbName, sslMode)
}

// Open connects GORM to the configured database and verifies the connection.
func Open(s Settings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(s.DSN(s.Name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get postgres connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	return db, nil
}

// Migrate creates or alters the tables backing the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
}
