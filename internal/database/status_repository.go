package database

import (
	"context"
	"database/sql"

	"github.com/avelar/tarea/internal/models"
)

// StatusRepo provides read access to the workflow lanes.
// Statuses are seeded at migration time and extended by inserting rows;
// there is no CLI surface for mutating them.
type StatusRepo struct {
	db *sql.DB
}

// GetAll retrieves all statuses in board order (ascending position).
func (r *StatusRepo) GetAll(ctx context.Context) ([]*models.Status, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, position FROM statuses ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.Status
	for rows.Next() {
		status := &models.Status{}
		if err := rows.Scan(&status.Name, &status.Position); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, rows.Err()
}

// Exists reports whether a status with the given name is defined.
func (r *StatusRepo) Exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM statuses WHERE name = ?", name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Names retrieves all status names in board order.
// Used to build "valid statuses are ..." validation messages.
func (r *StatusRepo) Names(ctx context.Context) ([]string, error) {
	statuses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.Name)
	}
	return names, nil
}
