package internal

import (
	"regexp"
	"strings"
)

var (
	safeNameRe    = regexp.MustCompile(`[^A-Za-z0-9]+`)
	sanitizeKeyRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// SafeFilename returns a filesystem-safe base name derived from a session
// title. Runs of special characters collapse to a single underscore.
// Returns "untitled" when nothing usable remains.
func SafeFilename(name string) string {
	cleaned := strings.Trim(safeNameRe.ReplaceAllString(name, "_"), "_")
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}

// SanitizeKey makes a raw store key safe to use as a file name, allowing only
// [A-Za-z0-9._-] and trimming trailing spaces and dots (invalid on Windows).
func SanitizeKey(key string) string {
	sanitized := sanitizeKeyRe.ReplaceAllString(key, "_")
	sanitized = strings.TrimRight(strings.TrimSpace(sanitized), " .")
	if sanitized == "" {
		return "untitled"
	}
	return sanitized
}
