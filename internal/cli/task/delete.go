package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runDelete),
	}
	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

type deleted struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func (d deleted) GetID() int { return d.ID }

func (d deleted) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Task '%s' deleted\n", d.Title)
	return err
}

func runDelete(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero task delete <id>"}
	}

	task, err := c.App.TaskService.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.App.TaskService.DeleteTask(ctx, id); err != nil {
		return nil, err
	}
	return deleted{ID: id, Title: task.Title}, nil
}
