package db

import (
	"fmt"
	"log"

	"orinoco/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", cfg.DBPath)
}

// NewDatabase opens the store at the configured path and verifies the
// connection. The whole process shares this one connection.
func NewDatabase(cfg *config.Config) (*sqlx.DB, error) {
	return newDatabaseWithDriver(cfg, "sqlite3")
}

func newDatabaseWithDriver(cfg *config.Config, driverName string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	db.SetMaxOpenConns(1)
	return db, nil
}

func InitDB(cfg *config.Config) *sqlx.DB {
	db, err := NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	log.Println("Database connection established")
	return db
}
