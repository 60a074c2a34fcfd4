package cli

import (
	"fmt"
	"strings"
	"taskManager/internal/models/task"

	"github.com/spf13/cobra"
)

func newAddCmd(e *env) *cobra.Command {
	var (
		description string
		status      string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := task.Input{
				Title:    strings.Join(args, " "),
				Status:   task.Status(status),
				Priority: task.Priority(priority),
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}

			store := e.newStore(cmd.Context())
			defer store.Close()

			created, err := store.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.printer.Task(&created))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description, up to 200 characters")
	cmd.Flags().StringVar(&status, "status", string(task.StatusTodo), "Todo, In Progress or Done")
	cmd.Flags().StringVar(&priority, "priority", string(task.PriorityMedium), "Low, Medium or High")
	return cmd
}
