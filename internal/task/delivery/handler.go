package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pracsphere-backend/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
}

// GetTasks returns all tasks for the authenticated user, newest first
// GET /api/tasks?status=pending|complete
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	var statusPtr *string
	if status := c.Query("status"); status != "" {
		statusPtr = &status
	}

	tasks, err := h.taskUsecase.GetUserTasks(userID, statusPtr)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("list tasks failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.Title, req.Description, req.DueDate)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) || errors.Is(err, usecase.ErrInvalidDueDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("create task failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to an owned task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		h.respondTaskError(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ToggleTaskStatus flips a task between pending and complete
// PATCH /api/tasks/:id/status
func (h *TaskHandler) ToggleTaskStatus(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.ToggleStatus(userID, taskID)
	if err != nil {
		h.respondTaskError(c, "toggle", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes an owned task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		h.respondTaskError(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// GetDashboard returns the task statistics for the authenticated user
// GET /api/dashboard
func (h *TaskHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.taskUsecase.ComputeStats(userID)
	if err != nil {
		log.Printf("compute stats failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *TaskHandler) respondTaskError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, usecase.ErrEmptyTitle),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidDueDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s task failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
