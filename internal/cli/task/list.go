package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a column in order",
		RunE:  handler.Command(runList),
	}
	cmd.Flags().Int("column", 0, "Column ID (required)")
	_ = cmd.MarkFlagRequired("column")
	cli.AddOutputFlags(cmd)
	return cmd
}

type taskList []*models.Task

func (l taskList) WriteHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}
	for _, t := range l {
		line := fmt.Sprintf("  %d. [%d] %s", t.Position+1, t.ID, cli.Truncate(t.Title, 60))
		if t.DueDate != nil {
			line += fmt.Sprintf(" (due %s)", t.DueDate.Format("2006-01-02"))
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	columnID, _ := cmd.Flags().GetInt("column")

	tasks, err := c.App.TaskService.GetTasksByColumn(ctx, columnID)
	if err != nil {
		return nil, err
	}
	return taskList(tasks), nil
}
