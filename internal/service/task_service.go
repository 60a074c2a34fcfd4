package service

import (
	"context"
	"errors"
	"fmt"
	"taskManager/internal/logger"
	"taskManager/internal/models/task"
	rep "taskManager/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики

type TaskService struct {
	repo  TaskRepository
	now   func() time.Time
	newID func() uuid.UUID
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.New,
	}
}

func validationError(err error) error {
	var verr task.ValidationErrors
	if errors.As(err, &verr) {
		return NewValidationError(verr)
	}
	return err
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

// CreateTask назначает id и created_at на стороне сервера
func (s *TaskService) CreateTask(ctx context.Context, input task.Input) (*task.Task, error) {
	if err := input.Validate(); err != nil {
		logger.Info("Service: Ошибка валидации при создании", zap.Error(err))
		return nil, validationError(err)
	}

	newTask := &task.Task{
		ID:          s.newID(),
		Title:       input.Title,
		Description: task.NormalizeDescription(input.Description),
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, newTask); err != nil {
		return nil, NewInternal("failed to create task", err)
	}

	logger.Info("Service: Задача создана", zap.String("task_id", newTask.ID.String()))
	return newTask, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*task.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, NewInternal("failed to list tasks", fmt.Errorf("получение задач: %w", err))
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound(id.String(), err)
		}
		return nil, NewInternal("failed to get task", fmt.Errorf("получение задачи: %w", err))
	}
	return t, nil
}

// UpdateTask - частичное обновление, без проверки версий: побеждает последняя запись
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, patch task.Patch) (*task.Task, error) {
	if err := patch.Validate(); err != nil {
		logger.Info("Service: Ошибка валидации при обновлении",
			zap.String("task_id", id.String()), zap.Error(err))
		return nil, validationError(err)
	}

	current, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := task.Apply(current, patch.Options()...)
	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			// удалили между чтением и записью
			return nil, NewNotFound(id.String(), err)
		}
		return nil, NewInternal("failed to update task", err)
	}

	logger.Info("Service: Задача обновлена", zap.String("task_id", id.String()))
	return updated, nil
}

// DeleteTask идемпотентен: удаление отсутствующей задачи не ошибка
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return NewInternal("failed to delete task", err)
	}
	logger.Info("Service: Задача удалена", zap.String("task_id", id.String()))
	return nil
}
