package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/cursor-chat-export/internal"
)

// WriteSessions renders each session with the given exporter into outDir,
// one file per session. File names come from the session title via
// SafeFilename; colliding titles get _1, _2… suffixes in session order, so
// repeated runs over the same source produce identical file sets.
// Returns the number of files written. Write failures are fatal.
func WriteSessions(sessions []*internal.Session, exporter Exporter, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, &internal.ExportError{Format: exporter.Extension(), Path: outDir, Err: err}
	}

	used := make(map[string]int)
	count := 0
	for _, session := range sessions {
		if session == nil {
			continue
		}

		base := internal.SafeFilename(session.DisplayTitle())
		suffix := used[base]
		used[base] = suffix + 1

		name := fmt.Sprintf("%s.%s", base, exporter.Extension())
		if suffix > 0 {
			name = fmt.Sprintf("%s_%d.%s", base, suffix, exporter.Extension())
		}
		path := filepath.Join(outDir, name)

		if err := writeSession(session, exporter, path); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func writeSession(session *internal.Session, exporter Exporter, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}

	if err := exporter.Export(session, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return nil
}
