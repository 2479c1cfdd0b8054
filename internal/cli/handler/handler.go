// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
)

// Func runs a command against an opened CLI and returns the result to print
type Func func(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error)

// Command wraps common command execution logic:
// open the CLI, run fn, close the CLI, then report the result or the error
// in the mode selected by --json / --quiet.
// Returns a cobra RunE compatible function.
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.Formatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		result, err := fn(ctx, cliInstance, cmd, args)
		if err != nil {
			slog.Debug("command failed", "command", cmd.CommandPath(), "error", err)
			return formatter.Fail(err)
		}
		if result == nil {
			return nil
		}
		return formatter.Success(result)
	}
}

// Pure is Command for commands that never touch the database
func Pure(fn func(cmd *cobra.Command, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		formatter := cli.Formatter(cmd)
		result, err := fn(cmd, args)
		if err != nil {
			return formatter.Fail(err)
		}
		if result == nil {
			return nil
		}
		return formatter.Success(result)
	}
}
