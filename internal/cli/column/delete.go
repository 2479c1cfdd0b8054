package column

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a column",
		Long:  "Delete a column. A column that still holds tasks is only deleted with --force, which deletes its tasks too.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runDelete),
	}
	cmd.Flags().Int("id", 0, "Column ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Delete the column's tasks as well")
	cli.AddOutputFlags(cmd)
	return cmd
}

type deleted struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (d deleted) GetID() int { return d.ID }

func (d deleted) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Column '%s' deleted\n", d.Name)
	return err
}

func runDelete(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero column delete <id>"}
	}
	force, _ := cmd.Flags().GetBool("force")

	column, err := c.App.ColumnService.GetColumnByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = c.App.ColumnService.DeleteColumn(ctx, id, force)
	if errors.Is(err, columnservice.ErrColumnHasTasks) {
		return nil, cli.Formatter(cmd).FailWithSuggestion(err, "Move the tasks first, or re-run with --force")
	}
	if err != nil {
		return nil, err
	}
	return deleted{ID: id, Name: column.Name}, nil
}
