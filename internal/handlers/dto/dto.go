package dto

import "taskManager/internal/models/task"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

func (r CreateTaskRequest) ToInput() task.Input {
	return task.Input{
		Title:       r.Title,
		Description: r.Description,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
	}
}

func (r UpdateTaskRequest) ToPatch() task.Patch {
	patch := task.Patch{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		patch.Status = &s
	}
	if r.Priority != nil {
		p := task.Priority(*r.Priority)
		patch.Priority = &p
	}
	return patch
}

// TaskResponse совпадает с task.Task на проводе, но не зависит от его тегов
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"createdAt"`
}

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt.UTC().Format(timeFormat),
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
