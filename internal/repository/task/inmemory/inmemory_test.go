package inmemory_test

import (
	"context"
	"fmt"
	"sync"
	"taskManager/internal/models/task"
	"taskManager/internal/repository"
	"taskManager/internal/repository/task/inmemory"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(title string) *task.Task {
	return &task.Task{
		ID:       uuid.New(),
		Title:    title,
		Status:   task.StatusTodo,
		Priority: task.PriorityMedium,
	}
}

// TestTaskStorage_HealthCheck тестирует проверку здоровья
func TestTaskStorage_HealthCheck(t *testing.T) {
	storage := inmemory.NewTaskStorage()
	assert.NoError(t, storage.HealthCheck(context.Background()))
}

// TestTaskStorage_Create тестирует создание задачи
func TestTaskStorage_Create(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	taskToCreate := newTask("Test Task")
	err := storage.Create(ctx, taskToCreate)
	require.NoError(t, err)

	// CreatedAt заполняется хранилищем
	assert.False(t, taskToCreate.CreatedAt.IsZero())

	retrievedTask, err := storage.GetByID(ctx, taskToCreate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Task", retrievedTask.Title)
	assert.Equal(t, taskToCreate.CreatedAt, retrievedTask.CreatedAt)
}

// TestTaskStorage_GetByID тестирует получение задачи по ID
func TestTaskStorage_GetByID(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	taskToCreate := newTask("Test Get Task")
	require.NoError(t, storage.Create(ctx, taskToCreate))

	retrievedTask, err := storage.GetByID(ctx, taskToCreate.ID)
	require.NoError(t, err)
	assert.Equal(t, taskToCreate.ID, retrievedTask.ID)

	// изменения копии не попадают в хранилище
	retrievedTask.Title = "changed"
	again, err := storage.GetByID(ctx, taskToCreate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Get Task", again.Title)

	_, err = storage.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_Update тестирует обновление задачи
func TestTaskStorage_Update(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	taskToCreate := newTask("Original Title")
	require.NoError(t, storage.Create(ctx, taskToCreate))
	createdAt := taskToCreate.CreatedAt

	desc := "Updated Description"
	toUpdate := taskToCreate.Clone()
	toUpdate.Title = "Updated Title"
	toUpdate.Description = &desc
	toUpdate.Status = task.StatusInProgress
	toUpdate.CreatedAt = time.Now().Add(time.Hour)

	require.NoError(t, storage.Update(ctx, toUpdate))

	retrievedTask, err := storage.GetByID(ctx, taskToCreate.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", retrievedTask.Title)
	assert.Equal(t, "Updated Description", retrievedTask.DescriptionText())
	assert.Equal(t, task.StatusInProgress, retrievedTask.Status)
	assert.Equal(t, createdAt, retrievedTask.CreatedAt, "created_at неизменяем")
	assert.Equal(t, createdAt, toUpdate.CreatedAt)
}

func TestTaskStorage_UpdateNotFound(t *testing.T) {
	storage := inmemory.NewTaskStorage()
	err := storage.Update(context.Background(), newTask("ghost"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestTaskStorage_List тестирует порядок: новые первыми
func TestTaskStorage_List(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tk := newTask(fmt.Sprintf("task-%d", i))
		tk.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, storage.Create(ctx, tk))
	}
	older := newTask("older")
	older.CreatedAt = base.Add(-time.Hour)
	require.NoError(t, storage.Create(ctx, older))

	tasks, err := storage.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	assert.Equal(t, "task-2", tasks[0].Title)
	assert.Equal(t, "task-1", tasks[1].Title)
	assert.Equal(t, "task-0", tasks[2].Title)
	assert.Equal(t, "older", tasks[3].Title)
}

// при равном created_at позже вставленная задача идёт первой, как в postgres
func TestTaskStorage_ListTieKeepsLaterInsertFirst(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, title := range []string{"first", "second", "third"} {
		tk := newTask(title)
		tk.CreatedAt = createdAt
		require.NoError(t, storage.Create(ctx, tk))
	}

	tasks, err := storage.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

// TestTaskStorage_Delete тестирует полное удаление
func TestTaskStorage_Delete(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	keep := newTask("keep")
	drop := newTask("drop")
	require.NoError(t, storage.Create(ctx, keep))
	require.NoError(t, storage.Create(ctx, drop))

	require.NoError(t, storage.Delete(ctx, drop.ID))
	_, err := storage.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// повторное удаление - не ошибка
	require.NoError(t, storage.Delete(ctx, drop.ID))

	tasks, err := storage.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

// TestTaskStorage_Concurrent проверяет работу под -race
func TestTaskStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewTaskStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tk := newTask(fmt.Sprintf("task-%d", i))
			assert.NoError(t, storage.Create(ctx, tk))
			_, err := storage.List(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	tasks, err := storage.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 50)
}
