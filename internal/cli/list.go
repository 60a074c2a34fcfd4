package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(e *env) *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := e.newStore(cmd.Context())
			defer store.Close()

			if err := flags.apply(store); err != nil {
				return err
			}
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}
			e.printer.View(store.View())
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
