package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
)

// FilterCmd returns the task filter subcommand
func FilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List tasks by status across boards",
		Long: `List every task whose column maps to a status. Column names are free text;
"QA", "Review" and "Waiting for QA" all map to in_review.

Examples:
  tablero task filter --status=blocked
  tablero task filter --status=in_progress --project=2 --json
`,
		RunE: handler.Command(runFilter),
	}
	cmd.Flags().String("status", "", "Status: to_do, in_progress, in_review, blocked, done (required)")
	_ = cmd.MarkFlagRequired("status")
	cli.AddProjectFlag(cmd, "Limit to one project; 0 means all projects")
	cli.AddOutputFlags(cmd)
	return cmd
}

type filtered []*models.TaskDetail

func (f filtered) WriteHuman(w io.Writer) error {
	if len(f) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}
	for _, t := range f {
		fmt.Fprintf(w, "  [%d] %-50s %s (project %d)\n", t.ID, cli.Truncate(t.Title, 50), t.ColumnName, t.ProjectID)
	}
	return nil
}

func runFilter(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	raw, _ := cmd.Flags().GetString("status")
	st, err := status.Parse(raw)
	if err != nil {
		return nil, err
	}
	projectID, err := cli.ProjectID(cmd, false)
	if err != nil {
		return nil, err
	}

	tasks, err := c.App.TaskService.ListTasksByStatus(ctx, projectID, st)
	if err != nil {
		return nil, err
	}
	return filtered(tasks), nil
}
