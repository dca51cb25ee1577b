package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

func TestSqliteTime(t *testing.T) {
	// CURRENT_TIMESTAMP stores "YYYY-MM-DD HH:MM:SS" in UTC; bound range
	// parameters must match that shape to compare lexicographically
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2024, 6, 10, 10, 30, 0, 0, loc)

	got := sqliteTime(in)
	want := "2024-06-10 08:30:00"
	if got != want {
		t.Errorf("sqliteTime() = %q, want %q", got, want)
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "?"},
		{2, "?, ?"},
		{3, "?, ?, ?"},
	}

	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.want {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNullStringHelpers(t *testing.T) {
	if ns := toNullString(""); ns.Valid {
		t.Error("toNullString(\"\") should be invalid")
	}
	if ns := toNullString("x"); !ns.Valid || ns.String != "x" {
		t.Errorf("toNullString(\"x\") = %+v", ns)
	}

	if got := NullStringToString(sql.NullString{}); got != "" {
		t.Errorf("NullStringToString(invalid) = %q, want \"\"", got)
	}
	if got := NullStringToString(sql.NullString{String: "y", Valid: true}); got != "y" {
		t.Errorf("NullStringToString(valid) = %q, want \"y\"", got)
	}
}

func TestParseTagColumns(t *testing.T) {
	valid := func(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

	// No tags at all
	tags := parseTagColumns(sql.NullString{}, sql.NullString{}, sql.NullString{})
	if len(tags) != 0 {
		t.Errorf("Expected no tags, got %v", tags)
	}

	// Normal case, sorted by name regardless of concat order
	tags = parseTagColumns(valid("2|1"), valid("zeta|alpha"), valid("|#fff"))
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(tags))
	}
	if tags[0].Name != "alpha" || tags[0].ID != 1 || tags[0].Color != "#fff" {
		t.Errorf("tags[0] = %+v", tags[0])
	}
	if tags[1].Name != "zeta" || tags[1].Color != "" {
		t.Errorf("tags[1] = %+v", tags[1])
	}

	// Mismatched column counts are treated as no data
	tags = parseTagColumns(valid("1|2"), valid("only-one"), valid("|"))
	if len(tags) != 0 {
		t.Errorf("Mismatched data should parse as empty, got %v", tags)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)

	sentinel := errors.New("boom")
	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO tags (name) VALUES ('inside-tx')"); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("withTx should surface the inner error, got %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tags WHERE name = 'inside-tx'").Scan(&count); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 0 {
		t.Error("Insert should have been rolled back")
	}
}
