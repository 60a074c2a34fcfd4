package cli

import (
	"fmt"
	"taskManager/internal/models/task"
	"taskManager/internal/taskstate"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// viewFlags - фильтр и страница, общие для list и watch
type viewFlags struct {
	status   string
	priority string
	search   string
	page     int
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", string(taskstate.StatusAll), "filter by status: All, Todo, In Progress, Done")
	cmd.Flags().StringVar(&f.priority, "priority", string(taskstate.PriorityAll), "filter by priority: All, Low, Medium, High")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "case-insensitive search in title and description")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "page number, starting at 1")
}

func (f *viewFlags) filter() (taskstate.Filter, error) {
	res := taskstate.Filter{
		Status:   taskstate.StatusAll,
		Priority: taskstate.PriorityAll,
		Search:   f.search,
	}

	if f.status != "" && f.status != string(taskstate.StatusAll) {
		status, err := task.ParseStatus(f.status)
		if err != nil {
			return taskstate.Filter{}, err
		}
		res.Status = status
	}
	if f.priority != "" && f.priority != string(taskstate.PriorityAll) {
		priority, err := task.ParsePriority(f.priority)
		if err != nil {
			return taskstate.Filter{}, err
		}
		res.Priority = priority
	}
	return res, nil
}

// apply настраивает вид Store. Страница ставится после фильтра, иначе SetFilter её сбросит.
func (f *viewFlags) apply(store *taskstate.Store) error {
	filter, err := f.filter()
	if err != nil {
		return err
	}
	store.SetFilter(filter)
	store.SetPage(f.page)
	return nil
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("неверный id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
