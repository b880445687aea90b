package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/nourish/internal/constants"
)

// Today returns now's calendar date (YYYY-MM-DD) in now's location.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD date at local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// Relative renders t relative to now, e.g. "in 2 hours" or "5 minutes ago".
func Relative(t, now time.Time) string {
	if t.After(now) {
		rel := strings.TrimSuffix(humanize.RelTime(t, now, "", ""), " ")
		if rel == "now" {
			return rel
		}
		return "in " + rel
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
