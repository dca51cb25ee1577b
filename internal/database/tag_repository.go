package database

import (
	"context"
	"database/sql"

	"github.com/avelar/tarea/internal/models"
)

// TagRepo provides data access for tags and task-tag assignments.
type TagRepo struct {
	db *sql.DB
}

// Create inserts a new tag. An empty color is stored as NULL.
// The UNIQUE constraint on name surfaces as a driver error; callers that
// care should check GetByName first for a friendly message.
func (r *TagRepo) Create(ctx context.Context, name, color string) (*models.Tag, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (name, color) VALUES (?, ?)`,
		name, toNullString(color),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Tag{
		ID:    int(id),
		Name:  name,
		Color: color,
	}, nil
}

// GetByName retrieves a tag by its unique name.
// Returns sql.ErrNoRows if no such tag exists.
func (r *TagRepo) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	tag := &models.Tag{}
	var color sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, color FROM tags WHERE name = ?`,
		name,
	).Scan(&tag.ID, &tag.Name, &color)
	if err != nil {
		return nil, err
	}
	tag.Color = NullStringToString(color)
	return tag, nil
}

// GetAll retrieves all tags ordered by name.
func (r *TagRepo) GetAll(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		var color sql.NullString
		if err := rows.Scan(&tag.ID, &tag.Name, &color); err != nil {
			return nil, err
		}
		tag.Color = NullStringToString(color)
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// Update replaces a tag's name and color.
// Returns sql.ErrNoRows if the tag does not exist.
func (r *TagRepo) Update(ctx context.Context, id int, name, color string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tags SET name = ?, color = ? WHERE id = ?`,
		name, toNullString(color), id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a tag (cascade removes its task assignments).
// Returns sql.ErrNoRows if the tag does not exist.
func (r *TagRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// AddToTask associates a tag with a task. Assigning an already-assigned
// tag is a no-op rather than an error.
func (r *TagRepo) AddToTask(ctx context.Context, taskID, tagID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
		taskID, tagID,
	)
	return err
}

// RemoveFromTask removes the association between a tag and a task.
// Removing an assignment that does not exist is a no-op.
func (r *TagRepo) RemoveFromTask(ctx context.Context, taskID, tagID int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM task_tags WHERE task_id = ? AND tag_id = ?`,
		taskID, tagID,
	)
	return err
}

// GetForTask retrieves all tags associated with a task, ordered by name.
func (r *TagRepo) GetForTask(ctx context.Context, taskID int) ([]*models.Tag, error) {
	return tagsForTask(ctx, r.db, taskID)
}

// SetForTask replaces all tags for a task with the given tag IDs.
// Runs in a transaction so a failure leaves the previous set intact.
func (r *TagRepo) SetForTask(ctx context.Context, taskID int, tagIDs []int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, taskID)
		if err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
				taskID, tagID,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// AssignByName associates the named tag with a task, creating the tag first
// if it doesn't exist, all inside one transaction. Re-assigning is a no-op.
func (r *TagRepo) AssignByName(ctx context.Context, taskID int, tagName string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		tagID, err := ensureTagTx(ctx, tx, tagName)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
			taskID, tagID,
		)
		return err
	})
}

// ensureTagTx finds or creates a tag by name inside an open transaction
// and returns its id.
func ensureTagTx(ctx context.Context, tx *sql.Tx, name string) (int, error) {
	var id int
	err := tx.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	result, err := tx.ExecContext(ctx, `INSERT INTO tags (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	newID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(newID), nil
}

// tagsForTask is shared by TaskRepo.GetByID and TagRepo.GetForTask.
func tagsForTask(ctx context.Context, db *sql.DB, taskID int) ([]*models.Tag, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT g.id, g.name, g.color
		FROM tags g
		INNER JOIN task_tags tt ON g.id = tt.tag_id
		WHERE tt.task_id = ?
		ORDER BY g.name
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*models.Tag{}
	for rows.Next() {
		tag := &models.Tag{}
		var color sql.NullString
		if err := rows.Scan(&tag.ID, &tag.Name, &color); err != nil {
			return nil, err
		}
		tag.Color = NullStringToString(color)
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
