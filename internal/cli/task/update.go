package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	taskservice "github.com/thenoetrevino/tablero/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Change a task's title, description or due date",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runUpdate),
	}
	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cli.AddOutputFlags(cmd)
	return cmd
}

type updated struct {
	*models.TaskDetail
}

func (u updated) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Task %d updated: %s\n", u.ID, u.Title)
	return err
}

func runUpdate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero task update <id> --title=..."}
	}

	req := taskservice.UpdateTaskRequest{ID: id}
	changed := false
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
		changed = true
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
		changed = true
	}
	if due, _ := cmd.Flags().GetString("due"); due != "" {
		date, err := cli.ParseDueDate(due)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrInvalidData, err)
		}
		req.DueDate = date
		changed = true
	}
	if clear, _ := cmd.Flags().GetBool("clear-due"); clear {
		if req.DueDate != nil {
			return nil, &cli.UsageError{Message: "--due and --clear-due cannot be combined"}
		}
		req.ClearDueDate = true
		changed = true
	}
	if !changed {
		return nil, &cli.UsageError{Message: "nothing to update", Suggestion: "Pass --title, --description, --due or --clear-due"}
	}

	if err := c.App.TaskService.UpdateTask(ctx, req); err != nil {
		return nil, err
	}
	detail, err := c.App.TaskService.GetTaskDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated{detail}, nil
}
