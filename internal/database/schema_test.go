package database

import (
	"path/filepath"
	"testing"
)

func TestEnsureSchema_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	// 1. Open creates the directory and schema
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	// 2. Insert a record
	_, err = db.Exec(`INSERT INTO catch_logs (id, caught_at, species, direction, strength, created_at) VALUES ('c1', '2025-06-01T10:00:00Z', 'sea bass', 'southward', 'strong', '2025-06-01T10:05:00Z')`)
	if err != nil {
		t.Fatalf("Failed to insert record: %v", err)
	}

	// 3. Ensure schema again (should not drop table)
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}
	db.Close()

	// 4. Reopen and verify record exists
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM catch_logs WHERE id = 'c1'").Scan(&count); err != nil {
		t.Fatalf("Failed to query record: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 record, got %d. Data was likely lost due to table drop.", count)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM tide_days").Scan(&count); err != nil {
		t.Fatalf("tide_days table missing: %v", err)
	}
}
