package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// удаления идут параллельно, но не больше rmConcurrency одновременно
const rmConcurrency = 4

func newRmCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id> [id...]",
		Aliases: []string{"delete"},
		Short:   "Delete tasks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			store := e.newStore(cmd.Context())
			defer store.Close()

			var g errgroup.Group
			g.SetLimit(rmConcurrency)
			for _, id := range ids {
				g.Go(func() error {
					if err := store.Delete(cmd.Context(), id); err != nil {
						return fmt.Errorf("удаление %s: %w", id, err)
					}
					return nil
				})
			}
			return g.Wait()
		},
	}
}
