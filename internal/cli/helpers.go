package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ParseTaskID parses a task ID from a flag or positional argument.
// IDs are positive integers.
func ParseTaskID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("task ID must be a number, got: %s", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be a positive integer, got: %d", id)
	}
	return id, nil
}

// NormalizeStatus maps user input onto the stored status spelling:
// trimmed, uppercased, hyphens folded to underscores. "in-progress"
// and "In_Progress" both become "IN_PROGRESS".
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(status), "-", "_"))
}

// NormalizeStatuses applies NormalizeStatus to every entry, dropping blanks.
func NormalizeStatuses(statuses []string) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if normalized := NormalizeStatus(s); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// ParseDate parses a filter date in YYYY-MM-DD or RFC 3339 form.
// Date-only values resolve to midnight UTC, which makes them the natural
// lower bound for --created-after style flags.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC 3339)", value)
}

// ParseDateEnd parses an upper-bound filter date. Date-only values resolve
// to the last instant of that day so "--created-before 2026-01-15" still
// matches tasks created during the 15th.
func ParseDateEnd(value string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC().Add(24*time.Hour - time.Second), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC 3339)", value)
}
