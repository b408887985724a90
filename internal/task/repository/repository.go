package repository

import "pracsphere-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindOwned finds a task by id scoped to its owner, nil when no match
	FindOwned(userID, id string) (*domain.Task, error)

	// FindByUserID finds all tasks for a user, newest first, with an
	// optional status filter
	FindByUserID(userID string, status *domain.TaskStatus) ([]*domain.Task, error)

	// Update persists changes to an existing task
	Update(task *domain.Task) error

	// DeleteOwned removes a task matched by (id, owner); reports whether
	// a row was actually deleted
	DeleteOwned(userID, id string) (bool, error)

	// CountByStatus counts a user's tasks grouped into the two states
	CountByStatus(userID string) (pending, completed int64, err error)
}
