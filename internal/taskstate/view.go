package taskstate

import (
	"slices"
	"strings"
	"taskManager/internal/models/task"
)

const DefaultPageSize = 5

// "All" снимает фильтр; пустое значение работает так же
const (
	StatusAll   task.Status   = "All"
	PriorityAll task.Priority = "All"
)

type Filter struct {
	Status   task.Status
	Priority task.Priority
	Search   string
}

func (f Filter) statusOK(t *task.Task) bool {
	return f.Status == "" || f.Status == StatusAll || t.Status == f.Status
}

func (f Filter) priorityOK(t *task.Task) bool {
	return f.Priority == "" || f.Priority == PriorityAll || t.Priority == f.Priority
}

func (f Filter) searchOK(t *task.Task) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.DescriptionText()), q)
}

// Matches - все три условия одновременно
func (f Filter) Matches(t *task.Task) bool {
	return f.statusOK(t) && f.priorityOK(t) && f.searchOK(t)
}

// IsZero - фильтр ничего не отсекает
func (f Filter) IsZero() bool {
	return (f.Status == "" || f.Status == StatusAll) &&
		(f.Priority == "" || f.Priority == PriorityAll) &&
		strings.TrimSpace(f.Search) == ""
}

// Apply сохраняет порядок исходного списка
func Apply(tasks []task.Task, f Filter) []task.Task {
	res := make([]task.Task, 0, len(tasks))
	for i := range tasks {
		if f.Matches(&tasks[i]) {
			res = append(res, tasks[i])
		}
	}
	return res
}

func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate возвращает копию страницы page (с единицы). Страница вне диапазона пустая.
func Paginate(tasks []task.Task, page, size int) []task.Task {
	if page < 1 || size <= 0 {
		return []task.Task{}
	}
	start := (page - 1) * size
	if start >= len(tasks) {
		return []task.Task{}
	}
	end := min(start+size, len(tasks))
	return slices.Clone(tasks[start:end])
}

// Snapshot - производное представление для отрисовки
type Snapshot struct {
	Tasks      []task.Task // текущая страница
	Total      int         // всего загружено
	Filtered   int         // прошло фильтр
	Page       int
	PageSize   int
	TotalPages int
	Loading    bool
	Filter     Filter
}

// OutOfRange - страница за пределами отфильтрованного списка.
// Store не сдвигает страницу сам, когда список сокращается.
func (s Snapshot) OutOfRange() bool {
	return s.Filtered > 0 && s.Page > s.TotalPages
}
