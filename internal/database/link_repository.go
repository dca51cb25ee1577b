package database

import (
	"context"
	"database/sql"

	"github.com/avelar/tarea/internal/models"
)

// LinkRepo provides data access for directed task dependency links.
// A row (from, to) means the "from" task depends on the "to" task.
type LinkRepo struct {
	db *sql.DB
}

// Create inserts a new link. Self-links and duplicate edges are rejected by
// table constraints; cycle prevention is the task service's responsibility.
func (r *LinkRepo) Create(ctx context.Context, fromTaskID, toTaskID int, linkType string) (*models.TaskLink, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO task_links (from_task_id, to_task_id, type) VALUES (?, ?, ?)`,
		fromTaskID, toTaskID, linkType,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.TaskLink{
		ID:         int(id),
		FromTaskID: fromTaskID,
		ToTaskID:   toTaskID,
		Type:       linkType,
	}, nil
}

// Exists reports whether a link with the given endpoints and type exists.
func (r *LinkRepo) Exists(ctx context.Context, fromTaskID, toTaskID int, linkType string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM task_links WHERE from_task_id = ? AND to_task_id = ? AND type = ?`,
		fromTaskID, toTaskID, linkType,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the link with the given endpoints and type.
// Returns sql.ErrNoRows if no such link exists.
func (r *LinkRepo) Delete(ctx context.Context, fromTaskID, toTaskID int, linkType string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM task_links WHERE from_task_id = ? AND to_task_id = ? AND type = ?`,
		fromTaskID, toTaskID, linkType,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// GetAll retrieves every link, ordered by id.
// The cycle check and the graph view both work over this full edge set.
func (r *LinkRepo) GetAll(ctx context.Context) ([]*models.TaskLink, error) {
	return r.queryLinks(ctx,
		`SELECT id, from_task_id, to_task_id, type FROM task_links ORDER BY id`,
	)
}

// GetForTask retrieves all links touching the given task on either end.
func (r *LinkRepo) GetForTask(ctx context.Context, taskID int) ([]*models.TaskLink, error) {
	return r.queryLinks(ctx,
		`SELECT id, from_task_id, to_task_id, type
		 FROM task_links
		 WHERE from_task_id = ? OR to_task_id = ?
		 ORDER BY id`,
		taskID, taskID,
	)
}

func (r *LinkRepo) queryLinks(ctx context.Context, query string, args ...any) ([]*models.TaskLink, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.TaskLink
	for rows.Next() {
		link := &models.TaskLink{}
		if err := rows.Scan(&link.ID, &link.FromTaskID, &link.ToTaskID, &link.Type); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// GetPrerequisites retrieves references to the tasks the given task depends
// on, ordered by task id.
func (r *LinkRepo) GetPrerequisites(ctx context.Context, taskID int) ([]*models.TaskReference, error) {
	return r.queryReferences(ctx, `
		SELECT t.id, t.title, t.status, tl.type
		FROM task_links tl
		INNER JOIN tasks t ON tl.to_task_id = t.id
		WHERE tl.from_task_id = ?
		ORDER BY t.id
	`, taskID)
}

// GetDependents retrieves references to the tasks that depend on the given
// task, ordered by task id.
func (r *LinkRepo) GetDependents(ctx context.Context, taskID int) ([]*models.TaskReference, error) {
	return r.queryReferences(ctx, `
		SELECT t.id, t.title, t.status, tl.type
		FROM task_links tl
		INNER JOIN tasks t ON tl.from_task_id = t.id
		WHERE tl.to_task_id = ?
		ORDER BY t.id
	`, taskID)
}

func (r *LinkRepo) queryReferences(ctx context.Context, query string, args ...any) ([]*models.TaskReference, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []*models.TaskReference{}
	for rows.Next() {
		ref := &models.TaskReference{}
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Status, &ref.LinkType); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}
