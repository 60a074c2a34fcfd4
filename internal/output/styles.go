package output

import (
	"taskManager/internal/models/task"

	"github.com/charmbracelet/lipgloss"
)

// цвета бейджей: Todo синий, In Progress жёлтый, Done зелёный;
// High красный, Medium оранжевый, Low серый
var (
	statusColors = map[task.Status]lipgloss.Color{
		task.StatusTodo:       lipgloss.Color("33"),
		task.StatusInProgress: lipgloss.Color("220"),
		task.StatusDone:       lipgloss.Color("42"),
	}
	priorityColors = map[task.Priority]lipgloss.Color{
		task.PriorityHigh:   lipgloss.Color("196"),
		task.PriorityMedium: lipgloss.Color("208"),
		task.PriorityLow:    lipgloss.Color("245"),
	}
	defaultBadgeColor = lipgloss.Color("245")
)

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	badge   lipgloss.Style
	card    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true),
		muted: r.NewStyle().Faint(true),
		badge: r.NewStyle().Padding(0, 1).Bold(true),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (s styles) statusBadge(status task.Status) string {
	color, ok := statusColors[status]
	if !ok {
		color = defaultBadgeColor
	}
	return s.badge.Foreground(color).Render(string(status))
}

func (s styles) priorityBadge(priority task.Priority) string {
	color, ok := priorityColors[priority]
	if !ok {
		color = defaultBadgeColor
	}
	return s.badge.Foreground(color).Render(string(priority))
}
