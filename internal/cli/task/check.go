package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CheckCmd returns the task check parent command for checklist items
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Manage a task's checklist",
	}
	cmd.AddCommand(checkAddCmd(), checkToggleCmd(), checkDeleteCmd())
	return cmd
}

func checkAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [task-id] [text...]",
		Short: "Append an item to a task's checklist",
		Args:  cobra.MinimumNArgs(2),
		RunE:  handler.Command(runCheckAdd),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func checkToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle [item-id]",
		Short: "Flip a checklist item between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runCheckToggle),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func checkDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [item-id]",
		Short: "Remove a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runCheckDelete),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type checklistItem struct {
	*models.ChecklistItem
}

func (c checklistItem) WriteHuman(w io.Writer) error {
	mark := "[ ]"
	if c.Done {
		mark = "[x]"
	}
	_, err := fmt.Fprintf(w, "✓ %s %s (#%d)\n", mark, c.Text, c.ID)
	return err
}

func runCheckAdd(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	taskID, err := cli.ParseID(cmd, args[:1], "")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero task check add <task-id> <text>"}
	}

	item, err := c.App.TaskService.AddChecklistItem(ctx, taskID, strings.Join(args[1:], " "))
	if err != nil {
		return nil, err
	}
	return checklistItem{item}, nil
}

func runCheckToggle(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error()}
	}

	item, err := c.App.TaskService.ToggleChecklistItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return checklistItem{item}, nil
}

type removedItem struct {
	ID int `json:"id"`
}

func (r removedItem) GetID() int { return r.ID }

func (r removedItem) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Checklist item %d deleted\n", r.ID)
	return err
}

func runCheckDelete(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error()}
	}

	if err := c.App.TaskService.DeleteChecklistItem(ctx, id); err != nil {
		return nil, err
	}
	return removedItem{ID: id}, nil
}
