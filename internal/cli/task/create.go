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

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a task in a column.

Examples:
  tablero task create --column=4 --title="Write release notes"

  # With a markdown description, due date and labels
  tablero task create --column=4 --title="Ship" \
    --description="## Steps\n- tag\n- announce" --due=2026-11-01 --labels=2,5

  # Quiet mode for bash capture
  TASK_ID=$(tablero task create --column=4 --title="Ship" --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().Int("column", 0, "Column ID (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().String("title", "", "Task title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Int("position", -1, "Insert at this index (default: append)")
	cmd.Flags().String("labels", "", "Comma-separated label IDs to attach")
	cli.AddOutputFlags(cmd)

	return cmd
}

type created struct {
	*models.Task
}

func (c created) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Task '%s' created (ID: %d)\n", c.Title, c.ID)
	return err
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	columnID, _ := cmd.Flags().GetInt("column")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	req := taskservice.CreateTaskRequest{
		ColumnID:    columnID,
		Title:       title,
		Description: description,
	}

	if due, _ := cmd.Flags().GetString("due"); due != "" {
		date, err := cli.ParseDueDate(due)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrInvalidData, err)
		}
		req.DueDate = date
	}
	if cmd.Flags().Changed("position") {
		position, _ := cmd.Flags().GetInt("position")
		req.Position = &position
	}
	if labels, _ := cmd.Flags().GetString("labels"); labels != "" {
		ids, err := cli.ParseIDList(labels)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrInvalidData, err)
		}
		req.LabelIDs = ids
	}

	task, err := c.App.TaskService.CreateTask(ctx, req)
	if err != nil {
		return nil, err
	}
	return created{task}, nil
}
