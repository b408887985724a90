package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pracsphere-backend/internal/task/domain"
	"pracsphere-backend/internal/task/repository"
)

func newUsecase(t *testing.T) TaskUsecase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tasks.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Task{}))
	return NewTaskUsecase(repository.NewGormTaskRepository(db))
}

func TestCreateTaskDefaults(t *testing.T) {
	uc := newUsecase(t)

	task, err := uc.CreateTask("user-1", "X", "", nil)
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, domain.TaskStatusPending, task.Status)
	require.Equal(t, "", task.Description)
	require.Nil(t, task.DueDate)

	tasks, err := uc.GetUserTasks("user-1", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "X", tasks[0].Title)
	require.Equal(t, domain.TaskStatusPending, tasks[0].Status)
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	uc := newUsecase(t)
	_, err := uc.CreateTask("user-1", "", "", nil)
	require.ErrorIs(t, err, ErrEmptyTitle)
}

func TestCreateTaskBadDueDate(t *testing.T) {
	uc := newUsecase(t)
	due := "next tuesday"
	_, err := uc.CreateTask("user-1", "X", "", &due)
	require.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestCreateTaskWithDueDate(t *testing.T) {
	uc := newUsecase(t)
	due := "2026-09-15T12:00:00Z"
	task, err := uc.CreateTask("user-1", "X", "desc", &due)
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	require.Equal(t, 2026, task.DueDate.Year())
}

func TestListIsOwnerScoped(t *testing.T) {
	uc := newUsecase(t)

	_, err := uc.CreateTask("alice", "alice task", "", nil)
	require.NoError(t, err)
	_, err = uc.CreateTask("bob", "bob task", "", nil)
	require.NoError(t, err)

	aliceTasks, err := uc.GetUserTasks("alice", nil)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	require.Equal(t, "alice task", aliceTasks[0].Title)

	bobTasks, err := uc.GetUserTasks("bob", nil)
	require.NoError(t, err)
	require.Len(t, bobTasks, 1)
	require.Equal(t, "bob task", bobTasks[0].Title)
}

func TestListStatusFilter(t *testing.T) {
	uc := newUsecase(t)

	pending, err := uc.CreateTask("u", "stay pending", "", nil)
	require.NoError(t, err)
	done, err := uc.CreateTask("u", "finish me", "", nil)
	require.NoError(t, err)
	_, err = uc.ToggleStatus("u", done.ID)
	require.NoError(t, err)

	status := "pending"
	tasks, err := uc.GetUserTasks("u", &status)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, pending.ID, tasks[0].ID)

	status = "complete"
	tasks, err = uc.GetUserTasks("u", &status)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, done.ID, tasks[0].ID)

	status = "bogus"
	_, err = uc.GetUserTasks("u", &status)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateTaskPartial(t *testing.T) {
	uc := newUsecase(t)
	task, err := uc.CreateTask("u", "before", "old", nil)
	require.NoError(t, err)

	title := "after"
	updated, err := uc.UpdateTask("u", task.ID, TaskUpdateRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Title)
	require.Equal(t, "old", updated.Description) // untouched fields survive
	require.Equal(t, domain.TaskStatusPending, updated.Status)
}

func TestUpdateTaskCrossUser(t *testing.T) {
	uc := newUsecase(t)
	task, err := uc.CreateTask("alice", "private", "", nil)
	require.NoError(t, err)

	title := "stolen"
	_, err = uc.UpdateTask("bob", task.ID, TaskUpdateRequest{Title: &title})
	require.ErrorIs(t, err, ErrTaskNotFound)

	// Alice's task is untouched.
	tasks, err := uc.GetUserTasks("alice", nil)
	require.NoError(t, err)
	require.Equal(t, "private", tasks[0].Title)
}

func TestUpdateTaskUnknownID(t *testing.T) {
	uc := newUsecase(t)
	title := "x"
	_, err := uc.UpdateTask("u", "missing", TaskUpdateRequest{Title: &title})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestToggleStatusTwiceRestores(t *testing.T) {
	uc := newUsecase(t)
	task, err := uc.CreateTask("u", "X", "", nil)
	require.NoError(t, err)

	once, err := uc.ToggleStatus("u", task.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusComplete, once.Status)

	twice, err := uc.ToggleStatus("u", task.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusPending, twice.Status)
}

func TestDeleteTask(t *testing.T) {
	uc := newUsecase(t)
	task, err := uc.CreateTask("u", "X", "", nil)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask("u", task.ID))
	require.ErrorIs(t, uc.DeleteTask("u", task.ID), ErrTaskNotFound)
}

func TestDeleteTaskCrossUser(t *testing.T) {
	uc := newUsecase(t)
	task, err := uc.CreateTask("alice", "private", "", nil)
	require.NoError(t, err)

	require.ErrorIs(t, uc.DeleteTask("bob", task.ID), ErrTaskNotFound)

	tasks, err := uc.GetUserTasks("alice", nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestComputeStatsEmpty(t *testing.T) {
	uc := newUsecase(t)

	stats, err := uc.ComputeStats("u")
	require.NoError(t, err)
	require.EqualValues(t, 0, stats.Total)
	require.EqualValues(t, 0, stats.CompletionRate)
	require.Equal(t, []domain.ChartBucket{
		{Name: "Pending", Count: 0},
		{Name: "Completed", Count: 0},
	}, stats.Chart)
}

func TestComputeStats(t *testing.T) {
	uc := newUsecase(t)

	for i := 0; i < 4; i++ {
		task, err := uc.CreateTask("u", "task", "", nil)
		require.NoError(t, err)
		if i < 3 {
			_, err = uc.ToggleStatus("u", task.ID)
			require.NoError(t, err)
		}
	}
	// Another user's tasks never count.
	_, err := uc.CreateTask("other", "noise", "", nil)
	require.NoError(t, err)

	stats, err := uc.ComputeStats("u")
	require.NoError(t, err)
	require.EqualValues(t, 4, stats.Total)
	require.EqualValues(t, 3, stats.Completed)
	require.EqualValues(t, 1, stats.Pending)
	require.InDelta(t, 75.0, stats.CompletionRate, 0.001)
}
