package cli

import (
	"fmt"
	"taskManager/internal/worker"
	"time"

	"github.com/spf13/cobra"
)

// очистка экрана и курсор в начало
const clearScreen = "\033[H\033[2J"

func newWatchCmd(e *env) *cobra.Command {
	var (
		flags    viewFlags
		interval time.Duration
		noClear  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the task list and refresh it periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := e.newStore(cmd.Context())
			defer store.Close()

			if err := flags.apply(store); err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = e.cfg.Client.RefreshInterval
			}

			out := cmd.OutOrStdout()
			var w *worker.RefreshWorker
			w = worker.NewRefreshWorker(store, &interval, func(err error) {
				if !noClear {
					fmt.Fprint(out, clearScreen)
				}
				e.printer.View(store.View())
				fmt.Fprintf(out, "Refreshed at %s, every %s. Ctrl+C to exit.\n",
					time.Now().Format(time.Kitchen), w.Interval())
			})
			w.Start(cmd.Context())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVarP(&interval, "interval", "n", worker.DefaultInterval, "refresh interval")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "append output instead of clearing the screen")
	return cmd
}
