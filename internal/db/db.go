package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteBusyTimeoutMS = "5000"

func Init(driver, connection string) (*sqlx.DB, error) {
	// SQLite: create data directory if needed
	if driver == "sqlite" && !strings.HasPrefix(connection, ":memory:") && !strings.HasPrefix(connection, "file:") {
		dir := filepath.Dir(strings.SplitN(connection, "?", 2)[0])
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if driver == "sqlite" {
		connection = withBusyTimeout(connection)
	}

	db, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if driver == "sqlite" {
		// SQLite has a single writer. One connection queues writers in the
		// pool instead of handing a losing writer SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

// Open connects and brings the schema up to date.
func Open(driver, connection string) (*sqlx.DB, error) {
	database, err := Init(driver, connection)
	if err != nil {
		return nil, err
	}

	err = RunMigrations(database.DB, driver)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	return database, nil
}

// withBusyTimeout makes concurrent SQLite writers wait for the lock instead of
// failing with SQLITE_BUSY. It goes first so later pragmas already wait. An
// explicit busy_timeout in the DSN wins.
func withBusyTimeout(connection string) string {
	if strings.Contains(connection, "busy_timeout") {
		return connection
	}
	pragma := "_pragma=busy_timeout(" + sqliteBusyTimeoutMS + ")"
	path, query, found := strings.Cut(connection, "?")
	if !found || query == "" {
		return path + "?" + pragma
	}
	return path + "?" + pragma + "&" + query
}
