package storage

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"

	_ "modernc.org/sqlite"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// getTableNames returns sorted table names from sqlite_master, excluding internal tables.
func getTableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TestInitDB_Fresh verifies the schema applies cleanly to an empty database.
func TestInitDB_Fresh(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed on fresh db: %v", err)
	}

	want := []string{"account", "kv"}
	tables := getTableNames(t, db)
	if len(tables) != len(want) {
		t.Fatalf("got tables %v, want %v", tables, want)
	}
	for i := range want {
		if tables[i] != want[i] {
			t.Errorf("table[%d] = %q, want %q", i, tables[i], want[i])
		}
	}
}

// TestInitDB_Idempotent verifies that running InitDB twice produces no errors.
func TestInitDB_Idempotent(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("first InitDB failed: %v", err)
	}
	if err := InitDB(db); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}
}

// TestInitDB_DataSurvival verifies that existing data survives a re-run.
func TestInitDB_DataSurvival(t *testing.T) {
	db := openTestDB(t)

	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('candidates', '[]')`); err != nil {
		t.Fatalf("failed to insert test row: %v", err)
	}

	if err := InitDB(db); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}

	var value string
	if err := db.QueryRow("SELECT value FROM kv WHERE key = 'candidates'").Scan(&value); err != nil {
		t.Fatalf("kv data lost after re-run: %v", err)
	}
	if value != "[]" {
		t.Errorf("value = %q, want %q", value, "[]")
	}
}

func TestSQLiteKV(t *testing.T) {
	db := openTestDB(t)
	if err := InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	kv := NewSQLiteKV(db)
	ctx := context.Background()

	if _, err := kv.Get(ctx, "candidates"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Get on missing key = %v, want ErrKeyNotFound", err)
	}

	if err := kv.Set(ctx, "candidates", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := kv.Get(ctx, "candidates")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Errorf("Get = %q, want stored value", got)
	}

	// Overwrite replaces the whole value.
	if err := kv.Set(ctx, "candidates", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite Set failed: %v", err)
	}
	got, err = kv.Get(ctx, "candidates")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get after overwrite = %q, want %q", got, `[]`)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "members"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Get on missing key = %v, want ErrKeyNotFound", err)
	}

	value := []byte(`[]`)
	if err := kv.Set(ctx, "members", value); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value[0] = 'x' // caller mutation must not leak into the store
	got, err := kv.Get(ctx, "members")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get = %q, want stored copy", got)
	}
}
