package cli

import (
	"errors"
	"fmt"
	"taskManager/internal/models/task"

	"github.com/spf13/cobra"
)

var errNothingToUpdate = errors.New("нечего обновлять: укажите хотя бы один флаг")

func newEditCmd(e *env) *cobra.Command {
	var (
		title       string
		description string
		status      string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of a task",
		Long: `Update only the fields given as flags.
An empty --description clears the description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			var patch task.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := task.Status(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("priority") {
				p := task.Priority(priority)
				patch.Priority = &p
			}
			if patch.IsEmpty() {
				return errNothingToUpdate
			}

			store := e.newStore(cmd.Context())
			defer store.Close()

			updated, err := store.Update(cmd.Context(), ids[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.printer.Task(&updated))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title, at least 3 characters")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description, empty to clear")
	cmd.Flags().StringVar(&status, "status", "", "Todo, In Progress or Done")
	cmd.Flags().StringVar(&priority, "priority", "", "Low, Medium or High")
	return cmd
}
