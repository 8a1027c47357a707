package internal

import (
	"database/sql"
	"os"

	_ "modernc.org/sqlite"
)

// RawRow is one raw key-value entry from the cursorDiskKV table.
type RawRow struct {
	RowID int64
	Key   string
	Value string
}

// OpenDatabase opens the state database in read-only mode. It fails with a
// StorageError wrapping os.ErrNotExist when the file is missing, so callers
// can distinguish "no database" from other failures.
func OpenDatabase(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// LoadRawRows returns every usable row from cursorDiskKV in rowid order.
// NULL values and the empty-array sentinel '[]' are filtered out at the
// query level; everything else is returned verbatim.
func LoadRawRows(db *sql.DB) ([]RawRow, error) {
	const query = `
		SELECT rowid, key, value
		FROM cursorDiskKV
		WHERE value IS NOT NULL AND value <> '[]'
		ORDER BY rowid`

	rows, err := db.Query(query)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	var result []RawRow
	for rows.Next() {
		var row RawRow
		var value sql.NullString
		if err := rows.Scan(&row.RowID, &row.Key, &value); err != nil {
			return nil, &StorageError{Op: "query", Err: err}
		}
		if value.Valid {
			row.Value = value.String
			result = append(result, row)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	return result, nil
}
