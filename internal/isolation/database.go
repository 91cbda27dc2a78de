package isolation

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"cpr/internal/config"
)

// DatabaseManager provisions one isolated MySQL database per worker so
// concurrent e2e runs don't trample each other's backend state. The
// database name is injected into each worker's runner environment.
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// EnsureDatabases checks that a database exists for every worker index
// and creates any that are missing. Connection settings come from the
// environment (DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD), loaded from
// .env by the config layer.
func (dm *DatabaseManager) EnsureDatabases(workers int) error {
	dbHost := envOr("DB_HOST", "127.0.0.1")
	dbPort := envOr("DB_PORT", "3306")
	dbUser := envOr("DB_USERNAME", "root")
	dbPassword := os.Getenv("DB_PASSWORD")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/", dbUser, dbPassword, dbHost, dbPort)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database server: %w", err)
	}

	for i := 0; i < workers; i++ {
		dbName := dm.config.DatabaseName(i)

		exists, err := dm.databaseExists(db, dbName)
		if err != nil {
			return fmt.Errorf("check database %s: %w", dbName, err)
		}
		if exists {
			continue
		}
		if err := dm.createDatabase(db, dbName); err != nil {
			return fmt.Errorf("create database %s: %w", dbName, err)
		}
	}

	return nil
}

func (dm *DatabaseManager) databaseExists(db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRow(query, dbName).Scan(&exists)
	return exists, err
}

func (dm *DatabaseManager) createDatabase(db *sql.DB, dbName string) error {
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	_, err := db.Exec(query)
	return err
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return !strings.HasPrefix(name, "_")
}

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
