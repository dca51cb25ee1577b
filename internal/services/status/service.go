// Package status exposes the status definitions that drive task lanes.
// Statuses are data, not code: the seeded set can be extended by editing the
// statuses table, and every consumer picks the change up from here.
package status

import (
	"context"
	"fmt"

	"github.com/avelar/tarea/internal/database"
	"github.com/avelar/tarea/internal/models"
)

// Service defines status-related read operations
type Service interface {
	ListStatuses(ctx context.Context) ([]*models.Status, error)
	StatusNames(ctx context.Context) ([]string, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new status service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListStatuses retrieves all status definitions in display order.
func (s *service) ListStatuses(ctx context.Context) ([]*models.Status, error) {
	statuses, err := s.repo.GetAllStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}

// StatusNames retrieves just the names, in display order.
func (s *service) StatusNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.StatusNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status names: %w", err)
	}
	return names, nil
}
