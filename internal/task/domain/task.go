package domain

import "time"

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending  TaskStatus = "pending"
	TaskStatusComplete TaskStatus = "complete"
)

// Valid reports whether s is one of the two known states.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusComplete
}

// Toggle flips pending to complete and back.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusComplete {
		return TaskStatusPending
	}
	return TaskStatusComplete
}

// Task represents a to-do item owned by exactly one user
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status" gorm:"default:pending"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Stats is the dashboard aggregate, recomputed on every request
type Stats struct {
	Total          int64         `json:"total"`
	Completed      int64         `json:"completed"`
	Pending        int64         `json:"pending"`
	CompletionRate float64       `json:"completion_rate"`
	Chart          []ChartBucket `json:"chart"`
}

// ChartBucket is one slice of the two-bucket dashboard series
type ChartBucket struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
