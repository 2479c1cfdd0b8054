package column

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ReorderCmd returns the column reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Set the order of a project's columns",
		Long: `Set the full column order of a project. Every column must be listed exactly once.

Example:
  tablero column reorder --project=1 --order=3,1,2
`,
		RunE: handler.Command(runReorder),
	}
	cli.AddProjectFlag(cmd, "Project ID")
	cmd.Flags().String("order", "", "Comma-separated column IDs in the new order (required)")
	_ = cmd.MarkFlagRequired("order")
	cli.AddOutputFlags(cmd)
	return cmd
}

type ordered []*models.Column

func (o ordered) WriteHuman(w io.Writer) error {
	fmt.Fprintln(w, "✓ Columns reordered:")
	for _, col := range o {
		fmt.Fprintf(w, "  %d. [%d] %s\n", col.Position+1, col.ID, col.Name)
	}
	return nil
}

func runReorder(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectID(cmd, true)
	if err != nil {
		return nil, err
	}
	order, _ := cmd.Flags().GetString("order")

	ids, err := cli.ParseIDList(order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrInvalidData, err)
	}

	if err := c.App.ColumnService.ReorderColumns(ctx, projectID, ids); err != nil {
		return nil, err
	}
	columns, err := c.App.ColumnService.GetColumnsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return ordered(columns), nil
}
