package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed should be callable safely — it creates data only when tables are
	// empty. We call it twice to verify idempotency. We don't clear the
	// database first because other test packages may be running
	// concurrently against the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var layoutCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM layouts").Scan(&layoutCount); err != nil {
		t.Fatalf("count layouts: %v", err)
	}
	if layoutCount < 1 {
		t.Errorf("expected at least 1 layout after seed, got %d", layoutCount)
	}
}
