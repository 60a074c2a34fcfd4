package cli

import (
	"context"
	"errors"
	"taskManager/internal/apiclient"
	"taskManager/internal/config"
	"taskManager/internal/logger"
	"taskManager/internal/output"
	"taskManager/internal/taskstate"

	"github.com/spf13/cobra"
)

// env - то, что нужно каждой подкоманде после загрузки конфига
type env struct {
	cfg     *config.Config
	client  *apiclient.Client
	printer *output.Printer
}

func (e *env) newStore(ctx context.Context) *taskstate.Store {
	return taskstate.New(ctx, e.client, e.printer.Notifier(),
		taskstate.WithPageSize(e.cfg.Client.PageSize))
}

// NewRootCmd собирает taskctl со всеми подкомандами
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		serverURL  string
		verbose    bool
	)
	e := &env{}

	root := &cobra.Command{
		Use:          "taskctl",
		Short:        "Manage tasks on a task manager server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Client.BaseURL = serverURL
			}
			if verbose {
				if err := logger.Init(true); err != nil {
					return err
				}
			}

			client, err := apiclient.New(cfg.Client.BaseURL, apiclient.WithTimeout(cfg.Client.Timeout))
			if err != nil {
				return err
			}

			e.cfg = cfg
			e.client = client
			e.printer = output.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is ./config.yml)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL, overrides client.base_url")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs to stderr")

	root.AddCommand(
		newListCmd(e),
		newAddCmd(e),
		newEditCmd(e),
		newRmCmd(e),
		newWatchCmd(e),
	)
	return root
}

// Execute запускает taskctl с контекстом, отменяемым по сигналу.
// Прерывание по сигналу не считается ошибкой.
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, taskstate.ErrClosed) {
		return nil
	}
	return err
}
