package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create statuses table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS statuses (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE
		)
	`)
	if err != nil {
		return err
	}

	// Create tasks table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'TODO',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (status) REFERENCES statuses(name) ON UPDATE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create tags table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			color TEXT
		)
	`)
	if err != nil {
		return err
	}

	// Create task-tags join table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS task_tags (
			task_id INTEGER NOT NULL,
			tag_id INTEGER NOT NULL,
			PRIMARY KEY (task_id, tag_id),
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create task links table. A row means from_task_id depends on to_task_id.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS task_links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			from_task_id INTEGER NOT NULL,
			to_task_id INTEGER NOT NULL,
			type TEXT NOT NULL DEFAULT 'dependency',
			FOREIGN KEY (from_task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (to_task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			UNIQUE (from_task_id, to_task_id, type),
			CHECK (from_task_id <> to_task_id)
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for efficient queries
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_updated ON tasks(updated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_task_tags_tag ON task_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_task_links_from ON task_links(from_task_id)`,
		`CREATE INDEX IF NOT EXISTS idx_task_links_to ON task_links(to_task_id)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	// Seed default statuses if the table is empty
	if err := seedDefaultStatuses(ctx, db); err != nil {
		return err
	}

	return nil
}

// seedDefaultStatuses inserts the default workflow lanes if the statuses
// table is empty. New lanes can be added later by inserting rows directly;
// nothing in the application hardcodes this set.
func seedDefaultStatuses(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM statuses").Scan(&count)
	if err != nil {
		return err
	}

	// If statuses exist, don't seed
	if count > 0 {
		return nil
	}

	defaultStatuses := []struct {
		name     string
		position int
	}{
		{"TODO", 1},
		{"IN_PROGRESS", 2},
		{"BLOCKED", 3},
		{"DONE", 4},
	}

	for _, st := range defaultStatuses {
		_, err := db.ExecContext(ctx,
			"INSERT INTO statuses (name, position) VALUES (?, ?)",
			st.name, st.position,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
