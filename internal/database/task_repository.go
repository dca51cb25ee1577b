package database

import (
	"context"
	"database/sql"
	"sort"
	"strconv"
	"strings"

	"github.com/avelar/tarea/internal/models"
)

// TaskRepo provides data access for tasks.
type TaskRepo struct {
	db *sql.DB
}

// Create inserts a new task and returns it with server-assigned fields.
func (r *TaskRepo) Create(ctx context.Context, title, description, status string) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status)
		 VALUES (?, ?, ?)`,
		title, description, status,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Retrieve the created task to get timestamps
	task := &models.Task{}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, created_at, updated_at
		 FROM tasks WHERE id = ?`,
		id,
	).Scan(
		&task.ID, &task.Title, &task.Description,
		&task.Status, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Tags = []*models.Tag{}

	return task, nil
}

// GetByID retrieves a single task with its tags.
// Returns sql.ErrNoRows if the task does not exist.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status, created_at, updated_at
		 FROM tasks WHERE id = ?`,
		id,
	).Scan(
		&task.ID, &task.Title, &task.Description,
		&task.Status, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tags, err := tagsForTask(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	task.Tags = tags

	return task, nil
}

// Exists reports whether a task with the given id exists.
func (r *TaskRepo) Exists(ctx context.Context, id int) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM tasks WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List retrieves tasks matching the given filters, newest-updated first.
// Tags are loaded in the same query via GROUP_CONCAT to avoid N+1 queries.
func (r *TaskRepo) List(ctx context.Context, filters models.TaskFilters) ([]*models.Task, error) {
	query := `
		SELECT
			t.id,
			t.title,
			t.description,
			t.status,
			t.created_at,
			t.updated_at,
			GROUP_CONCAT(g.id, '|') as tag_ids,
			GROUP_CONCAT(g.name, '|') as tag_names,
			GROUP_CONCAT(COALESCE(g.color, ''), '|') as tag_colors
		FROM tasks t
		LEFT JOIN task_tags tt ON t.id = tt.task_id
		LEFT JOIN tags g ON tt.tag_id = g.id`

	var where []string
	var args []any

	if len(filters.Statuses) > 0 {
		where = append(where, "t.status IN ("+placeholders(len(filters.Statuses))+")")
		for _, s := range filters.Statuses {
			args = append(args, s)
		}
	}
	if len(filters.Tags) > 0 {
		// Tag filters intersect: the task must carry every requested tag.
		where = append(where, `t.id IN (
			SELECT tt2.task_id
			FROM task_tags tt2
			INNER JOIN tags g2 ON tt2.tag_id = g2.id
			WHERE g2.name IN (`+placeholders(len(filters.Tags))+`)
			GROUP BY tt2.task_id
			HAVING COUNT(DISTINCT g2.name) = ?)`)
		for _, name := range filters.Tags {
			args = append(args, name)
		}
		args = append(args, len(filters.Tags))
	}
	if filters.CreatedAfter != nil {
		where = append(where, "t.created_at >= ?")
		args = append(args, sqliteTime(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		where = append(where, "t.created_at <= ?")
		args = append(args, sqliteTime(*filters.CreatedBefore))
	}
	if filters.UpdatedAfter != nil {
		where = append(where, "t.updated_at >= ?")
		args = append(args, sqliteTime(*filters.UpdatedAfter))
	}
	if filters.UpdatedBefore != nil {
		where = append(where, "t.updated_at <= ?")
		args = append(args, sqliteTime(*filters.UpdatedBefore))
	}

	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += `
		GROUP BY t.id, t.title, t.description, t.status, t.created_at, t.updated_at
		ORDER BY t.updated_at DESC, t.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var tagIDsStr, tagNamesStr, tagColorsStr sql.NullString
		task := &models.Task{}

		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
			&tagIDsStr,
			&tagNamesStr,
			&tagColorsStr,
		); err != nil {
			return nil, err
		}

		task.Tags = parseTagColumns(tagIDsStr, tagNamesStr, tagColorsStr)
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// CreateWithTags inserts a new task and assigns the named tags in a single
// transaction, creating tags that don't exist yet. Either everything lands
// or nothing does.
func (r *TaskRepo) CreateWithTags(ctx context.Context, title, description, status string, tagNames []string) (*models.Task, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, status)
			 VALUES (?, ?, ?)`,
			title, description, status,
		)
		if err != nil {
			return err
		}

		id, err = result.LastInsertId()
		if err != nil {
			return err
		}

		for _, name := range tagNames {
			tagID, err := ensureTagTx(ctx, tx, name)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
				id, tagID,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// UpdateWithTags replaces a task's fields and, when replaceTags is set, its
// whole tag set, in a single transaction. Missing tags are created.
// Returns sql.ErrNoRows if the task does not exist.
func (r *TaskRepo) UpdateWithTags(ctx context.Context, id int, title, description, status string, tagNames []string, replaceTags bool) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET title = ?, description = ?, status = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			title, description, status, id,
		)
		if err != nil {
			return err
		}
		if err := requireRow(result); err != nil {
			return err
		}

		if !replaceTags {
			return nil
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, id)
		if err != nil {
			return err
		}
		for _, name := range tagNames {
			tagID, err := ensureTagTx(ctx, tx, name)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
				id, tagID,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Update replaces a task's title, description and status, bumping updated_at.
// Returns sql.ErrNoRows if the task does not exist.
func (r *TaskRepo) Update(ctx context.Context, id int, title, description, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, description, status, id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// UpdateStatus changes only the status of a task, bumping updated_at.
// Returns sql.ErrNoRows if the task does not exist.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Touch bumps a task's updated_at without changing any other field.
// Used when only the task's tag set changed.
func (r *TaskRepo) Touch(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a task. Tag assignments and dependency links referencing it
// are removed by ON DELETE CASCADE. Returns sql.ErrNoRows if absent.
func (r *TaskRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// requireRow converts a zero-row result into sql.ErrNoRows so callers can
// distinguish "not found" from other failures.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// parseTagColumns parses pipe-delimited tag data from GROUP_CONCAT
func parseTagColumns(tagIDsStr, tagNamesStr, tagColorsStr sql.NullString) []*models.Tag {
	// If no tags exist for this task, return empty slice
	if !tagIDsStr.Valid || !tagNamesStr.Valid || !tagColorsStr.Valid {
		return []*models.Tag{}
	}

	ids := strings.Split(tagIDsStr.String, "|")
	names := strings.Split(tagNamesStr.String, "|")
	colors := strings.Split(tagColorsStr.String, "|")

	// Ensure all arrays have the same length
	if len(ids) != len(names) || len(ids) != len(colors) {
		return []*models.Tag{}
	}

	tags := make([]*models.Tag, 0, len(ids))
	for i := range ids {
		id, err := strconv.Atoi(ids[i])
		if err != nil {
			continue // Skip malformed data
		}
		tags = append(tags, &models.Tag{
			ID:    id,
			Name:  names[i],
			Color: colors[i],
		})
	}

	// GROUP_CONCAT order is unspecified; keep chip order stable
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })

	return tags
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
