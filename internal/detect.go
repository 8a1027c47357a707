package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvDatabasePath overrides the default database location when set.
const EnvDatabasePath = "CURSOR_CHAT_DB_PATH"

// ResolveDatabasePath picks the database path in priority order: the explicit
// flag value, the CURSOR_CHAT_DB_PATH environment variable, then the
// OS-specific default. Existence is not checked here; OpenDatabase handles
// missing files.
func ResolveDatabasePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvDatabasePath); env != "" {
		return env, nil
	}
	return DefaultDatabasePath()
}

// DefaultDatabasePath returns the default location of Cursor's state database.
//
// Windows: %APPDATA%/Cursor/User/globalStorage/state.vscdb
// macOS:   ~/Library/Application Support/Cursor/User/globalStorage/state.vscdb
// Linux:   ~/.config/Cursor/User/globalStorage/state.vscdb
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Cursor", "User", "globalStorage", "state.vscdb"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Cursor", "User", "globalStorage", "state.vscdb"), nil
	default:
		// Linux and other Unix
		return filepath.Join(home, ".config", "Cursor", "User", "globalStorage", "state.vscdb"), nil
	}
}
