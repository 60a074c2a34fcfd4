package handlers

import (
	"context"
	"taskManager/internal/models/task"

	"github.com/google/uuid"
)

type Service interface {
	HealthCheck(context.Context) error
	CreateTask(context.Context, task.Input) (*task.Task, error)
	ListTasks(context.Context) ([]*task.Task, error)
	UpdateTask(context.Context, uuid.UUID, task.Patch) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
}
