package column

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's columns and the status each maps to",
		RunE:  handler.Command(runList),
	}
	cli.AddProjectFlag(cmd, "Project ID")
	cli.AddOutputFlags(cmd)
	return cmd
}

type columnList []columnservice.ColumnStatus

func (l columnList) WriteHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No columns found")
		return err
	}
	for _, cs := range l {
		fmt.Fprintf(w, "  %d. [%d] %-24s → %s\n", cs.Column.Position+1, cs.Column.ID, cs.Column.Name, cs.Status)
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectID(cmd, true)
	if err != nil {
		return nil, err
	}

	statuses, err := c.App.ColumnService.GetColumnStatuses(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return columnList(statuses), nil
}
