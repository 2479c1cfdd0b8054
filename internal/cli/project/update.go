package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
	projectservice "github.com/thenoetrevino/tablero/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Rename a project or change its description",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runUpdate),
	}
	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	cli.AddOutputFlags(cmd)
	return cmd
}

type updated struct {
	*models.Project
}

func (u updated) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Project %d updated: %s\n", u.ID, u.Name)
	return err
}

func runUpdate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero project update <id> --name=..."}
	}

	req := projectservice.UpdateProjectRequest{ID: id}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if req.Name == nil && req.Description == nil {
		return nil, &cli.UsageError{Message: "nothing to update", Suggestion: "Pass --name and/or --description"}
	}

	if err := c.App.ProjectService.UpdateProject(ctx, req); err != nil {
		return nil, err
	}
	project, err := c.App.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated{project}, nil
}
