package column

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [id]",
		Short: "Rename a column",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runRename),
	}
	cmd.Flags().Int("id", 0, "Column ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New column name (required)")
	_ = cmd.MarkFlagRequired("name")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero column rename <id> --name=..."}
	}
	name, _ := cmd.Flags().GetString("name")

	if err := c.App.ColumnService.UpdateColumnName(ctx, id, name); err != nil {
		return nil, err
	}
	column, err := c.App.ColumnService.GetColumnByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return columnResult{column, "renamed"}, nil
}
