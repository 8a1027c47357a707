package internal

import "database/sql"

// Store extracts raw rows and decoded records from an open state database.
// Rows are read once and cached so dump-raw and session building share a
// single pass over the file.
type Store struct {
	db     *sql.DB
	rows   []RawRow
	loaded bool
}

// NewStore creates a new Store instance
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Rows returns all raw rows in rowid order
func (s *Store) Rows() ([]RawRow, error) {
	if s.loaded {
		return s.rows, nil
	}
	rows, err := LoadRawRows(s.db)
	if err != nil {
		return nil, err
	}
	s.rows = rows
	s.loaded = true
	return s.rows, nil
}

// Composers decodes all composerData rows, skipping malformed records
func (s *Store) Composers() ([]*RawComposer, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, err
	}

	composers := make([]*RawComposer, 0)
	for _, row := range rows {
		if _, ok := ParseComposerKey(row.Key); !ok {
			continue
		}
		composer, err := ParseComposerRow(row.Key, row.Value)
		if err != nil {
			LogDebug("skipping composer row: %v", err)
			continue
		}
		composers = append(composers, composer)
	}
	return composers, nil
}

// Bubbles decodes all bubbleId rows, skipping malformed records
func (s *Store) Bubbles() ([]*RawBubble, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, err
	}

	bubbles := make([]*RawBubble, 0)
	for _, row := range rows {
		if _, _, ok := ParseBubbleKey(row.Key); !ok {
			continue
		}
		bubble, err := ParseBubbleRow(row.Key, row.Value)
		if err != nil {
			LogDebug("skipping bubble row: %v", err)
			continue
		}
		bubbles = append(bubbles, bubble)
	}
	return bubbles, nil
}

// Sessions runs the full read-parse-build pipeline and returns the
// reconstructed sessions in stored order.
func (s *Store) Sessions() ([]*Session, error) {
	composers, err := s.Composers()
	if err != nil {
		return nil, err
	}
	bubbles, err := s.Bubbles()
	if err != nil {
		return nil, err
	}

	builder := NewSessionBuilder(bubbles)
	return builder.BuildAll(composers), nil
}
