package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/cursor-chat-export/testutil"
)

func TestOpenDatabase_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.vscdb")

	_, err := OpenDatabase(path)
	if err == nil {
		t.Fatal("OpenDatabase() should fail for a missing file")
	}

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("error should be a *StorageError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestOpenDatabase_Valid(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.vscdb")
	seed := testutil.CreateFileDB(t, dbPath)
	testutil.InsertRow(t, seed, "composerData:c1", `{"name":"x"}`)

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	rows, err := LoadRawRows(db)
	if err != nil {
		t.Fatalf("LoadRawRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("LoadRawRows() returned %d rows, want 1", len(rows))
	}
}

func TestLoadRawRows(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	testutil.InsertRow(t, db, "composerData:c1", `{"name":"first"}`)
	testutil.InsertRow(t, db, "bubbleId:c1:b1", `{"text":"hello"}`)
	testutil.InsertRow(t, db, "checkpointId:c1:x", `{"some":"data"}`)
	testutil.InsertRow(t, db, "emptyList", `[]`)
	if _, err := db.Exec("INSERT INTO cursorDiskKV (key, value) VALUES ('nullRow', NULL)"); err != nil {
		t.Fatalf("failed to insert NULL row: %v", err)
	}

	rows, err := LoadRawRows(db)
	if err != nil {
		t.Fatalf("LoadRawRows() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("LoadRawRows() returned %d rows, want 3 (NULL and '[]' filtered)", len(rows))
	}

	// rowid order matches insertion order
	wantKeys := []string{"composerData:c1", "bubbleId:c1:b1", "checkpointId:c1:x"}
	for i, want := range wantKeys {
		if rows[i].Key != want {
			t.Errorf("rows[%d].Key = %q, want %q", i, rows[i].Key, want)
		}
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].RowID <= rows[i-1].RowID {
			t.Errorf("rows not in rowid order: %d then %d", rows[i-1].RowID, rows[i].RowID)
		}
	}
}

func TestLoadRawRows_Empty(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)

	rows, err := LoadRawRows(db)
	if err != nil {
		t.Fatalf("LoadRawRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("LoadRawRows() returned %d rows, want 0", len(rows))
	}
}
