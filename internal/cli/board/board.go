// Package board opens the interactive board
package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/client"
	"github.com/thenoetrevino/tablero/internal/tui"
)

// fromConfig is the --remote value used when the flag is given without an address
const fromConfig = "config"

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Long: `Open the keyboard-driven board. Press ? inside for the key list.

By default the board reads the local database. With --remote it talks to a
running 'tablero serve' and redraws whenever the server reports a change.

Examples:
  tablero board
  tablero board --remote                  # server.addr from config
  tablero board --remote=10.0.0.5:7420
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}
	cmd.Flags().String("remote", "", "Address of a running tablero server")
	cmd.Flags().Lookup("remote").NoOptDefVal = fromConfig
	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetString("remote")
	if remote == "" {
		return handler.Command(runLocal)(cmd, args)
	}

	ctx := cmd.Context()
	cfg, err := cli.ConfigFromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if remote == fromConfig {
		remote = cfg.Server.Addr
	}

	c, err := client.New(remote)
	if err != nil {
		return cli.Formatter(cmd).Fail(err)
	}
	if err := c.Health(ctx); err != nil {
		return cli.Formatter(cmd).FailWithSuggestion(
			fmt.Errorf("no tablero server at %s: %w", remote, err),
			"Start one with 'tablero serve' or drop --remote to use the local database",
		)
	}

	slog.Info("opening remote board", "addr", remote)
	return tui.Run(ctx, c, cfg,
		tui.WithSubscriber(c.Subscribe),
		tui.WithRemote(remote),
		tui.WithLogger(slog.Default()),
		tui.WithSavedPreferences(),
	)
}

func runLocal(ctx context.Context, c *cli.CLI, _ *cobra.Command, _ []string) (any, error) {
	slog.Info("opening local board", "database", c.Config.DatabasePath)
	return nil, tui.Run(ctx, c.App.Backend(), c.Config, tui.WithLogger(c.App.Logger()), tui.WithSavedPreferences())
}
