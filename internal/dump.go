package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DumpRawRows writes each row's value as pretty-printed JSON to
// <sanitized-key>.json under dir. Rows whose value is not valid JSON are
// skipped with a warning. Returns the number of files written; directory and
// file write failures are fatal.
func DumpRawRows(rows []RawRow, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create dump directory: %w", err)
	}

	count := 0
	for _, row := range rows {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, []byte(row.Value), "", "  "); err != nil {
			LogWarn("skipping non-JSON row %s: %v", row.Key, err)
			continue
		}
		pretty.WriteByte('\n')

		path := filepath.Join(dir, SanitizeKey(row.Key)+".json")
		if err := os.WriteFile(path, pretty.Bytes(), 0644); err != nil {
			return count, fmt.Errorf("failed to write %s: %w", path, err)
		}
		count++
	}

	return count, nil
}
