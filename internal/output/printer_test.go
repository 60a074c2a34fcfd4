package output

import (
	"bytes"
	"errors"
	"taskManager/internal/models/task"
	"taskManager/internal/taskstate"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)
	p.loc = time.UTC
	return p, &out, &errOut
}

func sample(title string) task.Task {
	desc := "2 liters"
	return task.Task{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Title:       title,
		Description: &desc,
		Status:      task.StatusInProgress,
		Priority:    task.PriorityHigh,
		CreatedAt:   time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
	}
}

func TestPrinter_Task(t *testing.T) {
	p, _, _ := newTestPrinter()
	tk := sample("Buy milk")

	got := p.Task(&tk)
	assert.Contains(t, got, "Buy milk")
	assert.Contains(t, got, "In Progress")
	assert.Contains(t, got, "High")
	assert.Contains(t, got, "2 liters")
	assert.Contains(t, got, "Created: Mar 5, 2024 2:30 PM")
	assert.Contains(t, got, "11111111-1111-1111-1111-111111111111")
}

func TestPrinter_TaskWithoutDescription(t *testing.T) {
	p, _, _ := newTestPrinter()
	tk := sample("Walk")
	tk.Description = nil

	assert.NotContains(t, p.Task(&tk), "2 liters")
}

func TestPrinter_View(t *testing.T) {
	p, out, _ := newTestPrinter()
	view := taskstate.Snapshot{
		Tasks:      []task.Task{sample("first"), sample("second")},
		Total:      12,
		Filtered:   7,
		Page:       2,
		PageSize:   5,
		TotalPages: 2,
	}

	p.View(view)
	assert.Contains(t, out.String(), "first")
	assert.Contains(t, out.String(), "second")
	assert.Contains(t, out.String(), "Page 2 of 2 (7 of 12 tasks)")
}

func TestPrinter_ViewEmpty(t *testing.T) {
	tests := []struct {
		name string
		view taskstate.Snapshot
		want string
	}{
		{"загрузка", taskstate.Snapshot{Loading: true, Page: 1}, "Loading tasks..."},
		{"пустой фильтр", taskstate.Snapshot{Total: 3, Page: 1}, "No tasks match your filters."},
		{"за последней страницей", taskstate.Snapshot{Total: 6, Filtered: 6, Page: 3, PageSize: 5, TotalPages: 2}, "Page 3 is empty, last page is 2."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, _ := newTestPrinter()
			p.View(tt.view)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestPrinter_Notifier(t *testing.T) {
	p, out, errOut := newTestPrinter()
	n := p.Notifier()

	n.Success("Task created")
	n.Error("Failed to delete task", errors.New("500"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "✔ Task created")
	assert.Contains(t, errOut.String(), "✖ Failed to delete task")
}

func TestBadgesFallBackForUnknownValues(t *testing.T) {
	p, _, _ := newTestPrinter()
	assert.Contains(t, p.styles.statusBadge("Archived"), "Archived")
	assert.Contains(t, p.styles.priorityBadge("Urgent"), "Urgent")
}
