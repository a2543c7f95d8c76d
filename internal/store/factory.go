package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open creates a Backend by name.
//
// Supported backends:
//
//	"json"     - one JSON file per collection in dataDir (default)
//	"sqlite"   - SQLite database at dataDir/cylaba.db
//	"postgres" - PostgreSQL at dsn
//	"memory"   - in-memory, ephemeral
func Open(backend, dataDir, dsn string) (Backend, error) {
	switch backend {
	case "json", "":
		return NewFileBackend(dataDir)
	case "sqlite":
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
		}
		db, err := gorm.Open(sqlite.Open(filepath.Join(dataDir, "cylaba.db")), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return NewGormBackend(db, "sqlite")
	case "postgres":
		db, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return NewGormBackend(db, "postgres")
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: json, sqlite, postgres, memory)", backend)
	}
}

func gormConfig() *gorm.Config {
	// Missing documents are expected; keep gorm from logging them.
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}
