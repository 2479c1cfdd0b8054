package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project with all its columns, tasks and labels",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runDelete),
	}
	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip the confirmation requirement")
	cli.AddOutputFlags(cmd)
	return cmd
}

type deleted struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (d deleted) GetID() int { return d.ID }

func (d deleted) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Project '%s' deleted\n", d.Name)
	return err
}

func runDelete(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero project delete <id> --force"}
	}
	if force, _ := cmd.Flags().GetBool("force"); !force {
		return nil, &cli.UsageError{
			Message:    "deleting a project removes all of its tasks",
			Suggestion: "Re-run with --force to confirm",
		}
	}

	project, err := c.App.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.App.ProjectService.DeleteProject(ctx, id); err != nil {
		return nil, err
	}
	return deleted{ID: id, Name: project.Name}, nil
}
