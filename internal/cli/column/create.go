package column

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	columnservice "github.com/thenoetrevino/tablero/internal/services/column"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a column in a project. The name decides which status the column's
tasks report (e.g. "QA" reports in_review, "Shipped" reports done).

Examples:
  tablero column create --project=1 --name="Review"
  tablero column create --project=1 --name="Backlog" --position=0
`,
		RunE: handler.Command(runCreate),
	}

	cli.AddProjectFlag(cmd, "Project ID")
	cmd.Flags().String("name", "", "Column name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().Int("position", -1, "Insert at this index (default: append)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type columnResult struct {
	*models.Column
	verb string
}

func (c columnResult) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Column '%s' %s (ID: %d, position %d, status %s)\n",
		c.Name, c.verb, c.ID, c.Position, c.Status())
	return err
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectID(cmd, true)
	if err != nil {
		return nil, err
	}
	name, _ := cmd.Flags().GetString("name")

	req := columnservice.CreateColumnRequest{Name: name, ProjectID: projectID}
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
	}

	column, err := c.App.ColumnService.CreateColumn(ctx, req)
	if err != nil {
		return nil, err
	}
	return columnResult{column, "created"}, nil
}
