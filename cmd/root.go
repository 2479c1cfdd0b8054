// Package cmd assembles the tablero command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/column"
	"github.com/thenoetrevino/tablero/internal/cli/label"
	"github.com/thenoetrevino/tablero/internal/cli/project"
	"github.com/thenoetrevino/tablero/internal/cli/serve"
	"github.com/thenoetrevino/tablero/internal/cli/status"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/cli/tutorial"
	"github.com/thenoetrevino/tablero/internal/cli/use"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/logging"
)

// NewRootCmd builds the tablero command tree
func NewRootCmd() *cobra.Command {
	var logFile io.Closer

	root := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a kanban board for the terminal",
		Long: `Tablero is a kanban board for the terminal.

Projects hold ordered columns, columns hold ordered tasks. Cards are moved with
the keyboard in 'tablero board' or from scripts with the task and column
commands. 'tablero serve' shares one board with several terminals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			level := logging.ParseLevel(flagString(cmd, "log-level"))
			if dir, err := config.DataDir(); err == nil {
				if logFile, err = logging.Init(dir, level); err != nil {
					// Logging is best effort; the command still runs
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
				}
			}
			slog.Debug("command starting", "command", cmd.CommandPath(), "database", cfg.DatabasePath)

			cmd.SetContext(cli.WithConfig(ctx, cfg))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
	}

	root.PersistentFlags().String("config", "", "Config file (default ~/.config/tablero/config.yaml)")
	root.PersistentFlags().String("db", "", "Database file (overrides database_path and TABLERO_DB)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &cli.UsageError{
			Message:    err.Error(),
			Suggestion: fmt.Sprintf("Run '%s --help' for usage", c.CommandPath()),
		}
	})

	root.AddCommand(project.ProjectCmd())
	root.AddCommand(column.ColumnCmd())
	root.AddCommand(task.TaskCmd())
	root.AddCommand(label.LabelCmd())
	root.AddCommand(status.StatusCmd())
	root.AddCommand(use.UseCmd())
	root.AddCommand(board.BoardCmd())
	root.AddCommand(serve.ServeCmd())
	root.AddCommand(tutorial.TutorialCmd())

	return root
}

// loadConfig reads the config file, keeping one already placed on the context
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := flagString(cmd, "config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = cli.ConfigFromContext(cmd.Context())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if db := flagString(cmd, "db"); db != "" {
		cfg.DatabasePath = db
	}
	return cfg, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, args []string, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// Not yet reported by a command handler
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) && usageErr.Suggestion != "" {
			fmt.Fprintf(stderr, "Suggestion: %s\n", usageErr.Suggestion)
		}
	}
	return cli.ExitCodeFor(err)
}

// Main is the entry point used by main.go
func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stderr))
}
