package db

import (
	"path/filepath"
	"testing"
)

func TestMigrationsUpAndDown(t *testing.T) {
	database, err := Open("sqlite", filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	version, err := Version(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 2 {
		t.Fatalf("version = %d, want 2", version)
	}

	if err := MigrateDown(database.DB, "sqlite"); err != nil {
		t.Fatalf("down: %v", err)
	}
	version, err = Version(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 1 {
		t.Fatalf("version after down = %d, want 1", version)
	}

	var tables int
	err = database.Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'profiles'`)
	if err != nil {
		t.Fatal(err)
	}
	if tables != 0 {
		t.Fatal("profiles table still present after rolling back")
	}

	if err := RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("up again: %v", err)
	}
}

func TestUnknownDriver(t *testing.T) {
	if err := RunMigrations(nil, "oracle"); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestWithBusyTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./data/app.db", "./data/app.db?_pragma=busy_timeout(5000)"},
		{"./data/app.db?_pragma=foreign_keys(1)", "./data/app.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"},
		{"./data/app.db?_pragma=busy_timeout(100)", "./data/app.db?_pragma=busy_timeout(100)"},
	}
	for _, tt := range tests {
		if got := withBusyTimeout(tt.in); got != tt.want {
			t.Errorf("withBusyTimeout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
