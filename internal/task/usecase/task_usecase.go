package usecase

import (
	"errors"
	"time"

	"pracsphere-backend/internal/task/domain"
	"pracsphere-backend/internal/task/repository"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTitle     = errors.New("title is required")
	ErrInvalidStatus  = errors.New("invalid task status")
	ErrInvalidDueDate = errors.New("due_date must be RFC3339")
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(userID, title, description string, dueDate *string) (*domain.Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusPending,
	}

	if dueDate != nil && *dueDate != "" {
		t, err := time.Parse(time.RFC3339, *dueDate)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
		task.DueDate = &t
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, status *string) ([]*domain.Task, error) {
	var statusFilter *domain.TaskStatus
	if status != nil && *status != "" && *status != "all" {
		s := domain.TaskStatus(*status)
		if !s.Valid() {
			return nil, ErrInvalidStatus
		}
		statusFilter = &s
	}

	tasks, err := u.taskRepo.FindByUserID(userID, statusFilter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// UpdateTask resolves the task through the owner-scoped lookup first, so a
// task that exists but belongs to someone else is indistinguishable from an
// absent one.
func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.taskRepo.FindOwned(userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if updates.Title != nil {
		if *updates.Title == "" {
			return nil, ErrEmptyTitle
		}
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Status != nil {
		s := domain.TaskStatus(*updates.Status)
		if !s.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = s
	}
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else {
			t, err := time.Parse(time.RFC3339, *updates.DueDate)
			if err != nil {
				return nil, ErrInvalidDueDate
			}
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ToggleStatus(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindOwned(userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Status = task.Status.Toggle()
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	deleted, err := u.taskRepo.DeleteOwned(userID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func (u *taskUsecase) ComputeStats(userID string) (*domain.Stats, error) {
	pending, completed, err := u.taskRepo.CountByStatus(userID)
	if err != nil {
		return nil, err
	}

	total := pending + completed
	var rate float64
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return &domain.Stats{
		Total:          total,
		Completed:      completed,
		Pending:        pending,
		CompletionRate: rate,
		Chart: []domain.ChartBucket{
			{Name: "Pending", Count: pending},
			{Name: "Completed", Count: completed},
		},
	}, nil
}
