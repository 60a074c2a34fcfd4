package task

// TaskOption - частичное обновление задачи. ID и CreatedAt опции не трогают.
type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	return func(task *Task) {
		task.Title = title
	}
}

// WithDescription с nil или пустой строкой стирает описание
func WithDescription(description *string) TaskOption {
	return func(task *Task) {
		task.Description = NormalizeDescription(description)
	}
}

// NormalizeDescription приводит пустое описание к nil и копирует значение
func NormalizeDescription(description *string) *string {
	if description == nil || *description == "" {
		return nil
	}
	d := *description
	return &d
}

func WithStatus(status Status) TaskOption {
	return func(task *Task) {
		task.Status = status
	}
}

func WithPriority(priority Priority) TaskOption {
	return func(task *Task) {
		task.Priority = priority
	}
}

// Input - данные для создания задачи
type Input struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
}

// Patch - данные для частичного обновления. Поле nil означает "не менять".
type Patch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil
}

func (p Patch) Options() []TaskOption {
	opts := []TaskOption{}
	if p.Title != nil {
		opts = append(opts, WithTitle(*p.Title))
	}
	if p.Description != nil {
		opts = append(opts, WithDescription(p.Description))
	}
	if p.Status != nil {
		opts = append(opts, WithStatus(*p.Status))
	}
	if p.Priority != nil {
		opts = append(opts, WithPriority(*p.Priority))
	}
	return opts
}

// Apply применяет опции к копии задачи
func Apply(t *Task, opts ...TaskOption) *Task {
	updated := t.Clone()
	for _, opt := range opts {
		if opt != nil {
			opt(updated)
		}
	}
	updated.ID = t.ID
	updated.CreatedAt = t.CreatedAt
	return updated
}
