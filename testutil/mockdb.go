package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with an empty
// cursorDiskKV table.
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	createKVTable(t, db)
	return db
}

// CreateFileDB creates a SQLite database file at dbPath with an empty
// cursorDiskKV table. Used by command-level tests that need a real path.
func CreateFileDB(t *testing.T, dbPath string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to create database at %s: %v", dbPath, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	createKVTable(t, db)
	return db
}

func createKVTable(t *testing.T, db *sql.DB) {
	t.Helper()
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS cursorDiskKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create cursorDiskKV table: %v", err)
	}
}

// InsertRow inserts a raw key-value row
func InsertRow(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO cursorDiskKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert row %s: %v", key, err)
	}
}

// SeedConversation inserts a complete two-message conversation: one composer
// with user and assistant headers plus the matching bubbles.
func SeedConversation(t *testing.T, db *sql.DB, composerID, name string) {
	t.Helper()

	InsertRow(t, db, "composerData:"+composerID,
		`{"name":"`+name+`","createdAt":1700000000000,"lastUpdatedAt":1700000060000,`+
			`"fullConversationHeadersOnly":[{"bubbleId":"b1","type":1},{"bubbleId":"b2","type":2}]}`)
	InsertRow(t, db, "bubbleId:"+composerID+":b1",
		`{"text":"How do I reverse a string in Go?","timestamp":1700000000000}`)
	InsertRow(t, db, "bubbleId:"+composerID+":b2",
		`{"text":"Use a rune slice and swap from both ends.","thinking":{"text":"User wants a Go snippet."},"timestamp":1700000030000}`)
}
