package label

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// AttachCmd returns the label attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a label to a task",
		Long: `Attach a label to a task. Both must belong to the same project.

Examples:
  tablero label attach --task=5 --label=2
`,
		RunE: handler.Command(runAttach),
	}
	taskLabelFlags(cmd)
	return cmd
}

// DetachCmd returns the label detach subcommand
func DetachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach",
		Short: "Remove a label from a task",
		RunE:  handler.Command(runDetach),
	}
	taskLabelFlags(cmd)
	return cmd
}

func taskLabelFlags(cmd *cobra.Command) {
	cmd.Flags().Int("task", 0, "Task ID (required)")
	_ = cmd.MarkFlagRequired("task")
	cmd.Flags().Int("label", 0, "Label ID (required)")
	_ = cmd.MarkFlagRequired("label")
	cli.AddOutputFlags(cmd)
}

type taskLabel struct {
	TaskID   int    `json:"task_id"`
	LabelID  int    `json:"label_id"`
	Label    string `json:"label"`
	Attached bool   `json:"attached"`
}

func (t taskLabel) GetID() int { return t.TaskID }

func (t taskLabel) WriteHuman(w io.Writer) error {
	if t.Attached {
		_, err := fmt.Fprintf(w, "✓ Label '%s' attached to task #%d\n", t.Label, t.TaskID)
		return err
	}
	_, err := fmt.Fprintf(w, "✓ Label '%s' removed from task #%d\n", t.Label, t.TaskID)
	return err
}

func runAttach(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	taskID, _ := cmd.Flags().GetInt("task")
	labelID, _ := cmd.Flags().GetInt("label")

	label, err := c.App.LabelService.GetLabelByID(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if err := c.App.TaskService.AttachLabel(ctx, taskID, labelID); err != nil {
		return nil, err
	}
	return taskLabel{TaskID: taskID, LabelID: labelID, Attached: true, Label: label.Name}, nil
}

func runDetach(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	taskID, _ := cmd.Flags().GetInt("task")
	labelID, _ := cmd.Flags().GetInt("label")

	label, err := c.App.LabelService.GetLabelByID(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if err := c.App.TaskService.DetachLabel(ctx, taskID, labelID); err != nil {
		return nil, err
	}
	return taskLabel{TaskID: taskID, LabelID: labelID, Label: label.Name}, nil
}
