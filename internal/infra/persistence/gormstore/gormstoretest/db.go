// Package gormstoretest opens throwaway SQLite databases for tests of
// packages built on gormstore.
package gormstoretest

import (
	"testing"

	"calsync/internal/infra/persistence/gormstore"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the users table.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gormstore.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	if err := gormstore.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql.DB: %v", err)
	}
	// One connection keeps the shared-cache database free of table locks.
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
