package task

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move a task to another column or position",
		Long: `Move a task to a position within a column, or to the first column whose
name maps to a status. Positions in both columns are kept dense.

Examples:
  # To the top of column 5
  tablero task move 12 --column=5 --position=0

  # To the first column of the board that maps to in_review
  tablero task move 12 --status=in_review
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runMove),
	}
	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().Int("column", 0, "Target column ID")
	cmd.Flags().Int("position", -1, "Target index in the column (default: end)")
	cmd.Flags().String("status", "", "Target status: to_do, in_progress, in_review, blocked, done")
	cmd.MarkFlagsMutuallyExclusive("column", "status")
	cmd.MarkFlagsOneRequired("column", "status")
	cli.AddOutputFlags(cmd)
	return cmd
}

type moved struct {
	*models.TaskDetail
}

func (m moved) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Task %d moved to '%s' at position %d (%s)\n",
		m.ID, m.ColumnName, m.Position, m.Status)
	return err
}

func runMove(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero task move <id> --column=<id>"}
	}

	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		st, err := status.Parse(raw)
		if err != nil {
			return nil, err
		}
		if err := c.App.TaskService.MoveTaskToStatus(ctx, id, st); err != nil {
			return nil, err
		}
	} else {
		columnID, _ := cmd.Flags().GetInt("column")
		position, _ := cmd.Flags().GetInt("position")
		if position < 0 {
			// past the end clamps to an append
			position = math.MaxInt
		}
		if err := c.App.TaskService.MoveTask(ctx, id, columnID, position); err != nil {
			return nil, err
		}
	}

	detail, err := c.App.TaskService.GetTaskDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return moved{detail}, nil
}
