package task

import (
	"time"

	"github.com/google/uuid"
)

// Task - задача в том виде, в котором её видят клиент и хранилище.
// ID и CreatedAt назначает сервер, клиент их не меняет.
type Task struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Status      Status    `json:"status" db:"status"`
	Priority    Priority  `json:"priority" db:"priority"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Status string
type Priority string

const StatusTodo Status = "Todo"
const StatusInProgress Status = "In Progress"
const StatusDone Status = "Done"

const PriorityLow Priority = "Low"
const PriorityMedium Priority = "Medium"
const PriorityHigh Priority = "High"

var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParseStatus не приводит регистр и не подставляет значения по умолчанию.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", ValidationErrors{FieldStatus: "Status must be one of: Todo, In Progress, Done"}
	}
	return status, nil
}

func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if !priority.Valid() {
		return "", ValidationErrors{FieldPriority: "Priority must be one of: Low, Medium, High"}
	}
	return priority, nil
}

// Clone возвращает копию задачи, не разделяющую Description с оригиналом.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}

// DescriptionText - описание или пустая строка
func (t *Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}
