package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
)

func openMigrated(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "directory.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(context.Background(), "../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestInitializeSizesPool(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	if got := db.Stats().MaxOpenConnections; got != defaultMaxOpenConns {
		t.Errorf("MaxOpenConnections = %d, want %d", got, defaultMaxOpenConns)
	}
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	for _, table := range []string{"migrations", "profiles", "family_members"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// A second run must not re-apply recorded files
	if err := db.RunMigrations(ctx, "../../migrations"); err != nil {
		t.Fatalf("Re-running migrations failed: %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO profiles (id, full_name, city) VALUES (?, ?, ?)", "acct-1", "Jain Family", "Bhopal")
		return err
	})
	if err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE id = ?", "acct-1").Scan(&count); err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 profile, got %d", count)
	}

	// A failing callback rolls back its writes
	err = db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO profiles (id, full_name) VALUES (?, ?)", "acct-2", "Shah Family"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO profiles (id, full_name) VALUES (?, ?)", "acct-1", "Duplicate")
		return err
	})
	if err == nil {
		t.Fatal("Expected duplicate key error")
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE id = ?", "acct-2").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 profiles after rollback, got %d", count)
	}
}

func TestUpsertClauseExecutes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	query := "INSERT INTO profiles (id, full_name, city) VALUES (?, ?, ?) " +
		db.Dialect.UpsertClause("id", []string{"full_name", "city"})
	for _, city := range []string{"Bhopal", "Indore"} {
		if _, err := db.ExecContext(ctx, query, "acct-1", "Jain Family", city); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	var city string
	if err := db.QueryRowContext(ctx, "SELECT city FROM profiles WHERE id = ?", "acct-1").Scan(&city); err != nil {
		t.Fatalf("Failed to read profile: %v", err)
	}
	if city != "Indore" {
		t.Errorf("Expected upserted city Indore, got %q", city)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openMigrated(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "INSERT INTO profiles (id, full_name) VALUES (?, ?)", "acct-1", "Jain Family"); err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var name string
			err := db.QueryRowContext(ctx, "SELECT full_name FROM profiles WHERE id = ?", "acct-1").Scan(&name)
			if err != nil {
				t.Errorf("Concurrent read failed: %v", err)
				return
			}
			if name != "Jain Family" {
				t.Errorf("Expected 'Jain Family', got '%s'", name)
			}
		}()
	}
	wg.Wait()
}
