package usecase

import "pracsphere-backend/internal/task/domain"

// TaskUpdateRequest carries a partial update; nil fields are left unchanged
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

// TaskUsecase defines the task operations, all scoped to an owner
type TaskUsecase interface {
	// CreateTask creates a pending task for the user
	CreateTask(userID, title, description string, dueDate *string) (*domain.Task, error)

	// GetUserTasks lists the user's tasks, newest first, optionally
	// filtered by status ("pending" or "complete")
	GetUserTasks(userID string, status *string) ([]*domain.Task, error)

	// UpdateTask applies a partial update to an owned task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// ToggleStatus flips an owned task between pending and complete
	ToggleStatus(userID, taskID string) (*domain.Task, error)

	// DeleteTask removes an owned task
	DeleteTask(userID, taskID string) error

	// ComputeStats derives the dashboard aggregate for the user
	ComputeStats(userID string) (*domain.Stats, error)
}
