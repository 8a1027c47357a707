package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDumpRawRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "raw")
	rows := []RawRow{
		{RowID: 1, Key: "composerData:c1", Value: `{"name":"chat"}`},
		{RowID: 2, Key: "bubbleId:c1:b1", Value: `{"text":"hi"}`},
		{RowID: 3, Key: "notJson", Value: `plain text`},
	}

	count, err := DumpRawRows(rows, dir)
	if err != nil {
		t.Fatalf("DumpRawRows() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (non-JSON row skipped)", count)
	}

	data, err := os.ReadFile(filepath.Join(dir, "composerData_c1.json"))
	if err != nil {
		t.Fatalf("dumped file missing: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dumped file is not valid JSON: %v", err)
	}
	if decoded["name"] != "chat" {
		t.Errorf("dumped content = %v, want name=chat", decoded)
	}

	if _, err := os.Stat(filepath.Join(dir, "notJson.json")); !os.IsNotExist(err) {
		t.Error("non-JSON row should not produce a file")
	}
}

func TestDumpRawRows_Empty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "raw")

	count, err := DumpRawRows(nil, dir)
	if err != nil {
		t.Fatalf("DumpRawRows() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	// The directory is still created so callers can rely on it existing.
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("dump directory not created: %v", err)
	}
}
