// Package testutils provides testing utilities with a focus on database
// testing with transaction isolation. Each integration test runs in its own
// transaction, which is rolled back when the test completes, so tests can
// run in parallel against the same database without interfering with each
// other and without manual cleanup.
package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

// migrationsRunOnce ensures migrations are only run once across all tests.
var migrationsRunOnce sync.Once

// IsIntegrationTestEnvironment reports whether DATABASE_URL is set, i.e.
// whether integration tests can reach a database.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// GetTestDBWithT returns an open database connection for integration tests,
// skipping the test when DATABASE_URL is not set. The connection is closed
// automatically via t.Cleanup, and the schema migrations are applied once
// per test binary.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if !IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}
	dbURL := os.Getenv("DATABASE_URL")

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	if err := SetupTestDatabaseSchema(db); err != nil {
		t.Fatalf("failed to set up test database schema: %v", err)
	}

	return db
}

// SetupTestDatabaseSchema applies all schema migrations to the given
// database. It runs at most once per test binary even when called from many
// tests.
func SetupTestDatabaseSchema(db *sql.DB) error {
	var setupErr error
	migrationsRunOnce.Do(func() {
		if err := goose.SetDialect("postgres"); err != nil {
			setupErr = fmt.Errorf("failed to set goose dialect: %w", err)
			return
		}
		dir, err := migrationsDir()
		if err != nil {
			setupErr = err
			return
		}
		if err := goose.Up(db, dir); err != nil {
			setupErr = fmt.Errorf("failed to apply migrations: %w", err)
		}
	})
	return setupErr
}

// migrationsDir locates the migrations directory relative to this source
// file, so tests work regardless of the package they run from.
func migrationsDir() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to determine caller location")
	}
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations")
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}
	return dir, nil
}

// WithTx runs fn inside a transaction that is always rolled back, giving the
// test a private, self-cleaning view of the database.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("failed to begin test transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
