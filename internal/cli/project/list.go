package project

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE:  handler.Command(runList),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type projectList []*models.Project

func (l projectList) WriteHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No projects found")
		return err
	}

	fmt.Fprintf(w, "Found %d projects:\n\n", len(l))
	for _, p := range l {
		fmt.Fprintf(w, "  [%d] %s", p.ID, p.Name)
		if p.Description != "" {
			fmt.Fprintf(w, " - %s", p.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, _ *cobra.Command, _ []string) (any, error) {
	projects, err := c.App.ProjectService.GetAllProjects(ctx)
	if err != nil {
		return nil, err
	}
	return projectList(projects), nil
}
