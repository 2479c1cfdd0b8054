package use

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Set the default project for this shell",
		Long: `Print the shell command that sets ` + cli.ProjectEnv + `. Evaluate it:

  eval $(tablero use project 3)
  eval $(tablero use project --clear)
  tablero use project --show

An explicit --project flag on other commands still wins.`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runUseProject),
	}

	cmd.Flags().Bool("clear", false, "Clear the project context")
	cmd.Flags().Bool("show", false, "Show the project context")
	cmd.MarkFlagsMutuallyExclusive("clear", "show")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUseProject(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")

	switch {
	case clearFlag:
		fmt.Fprintln(cmd.ErrOrStderr(), "Cleared project context")
		return cleared{}, nil
	case showFlag:
		return showCurrent(ctx, c, cmd)
	}

	if len(args) == 0 {
		return nil, &cli.UsageError{
			Message:    "project ID required",
			Suggestion: "eval $(tablero use project <project-id>)",
		}
	}
	id, err := cli.ParseID(cmd, args, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrInvalidData, err)
	}

	project, err := c.App.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Now using project %d: %s\n", project.ID, project.Name)
	return exported{Project: project}, nil
}

func showCurrent(ctx context.Context, c *cli.CLI, cmd *cobra.Command) (any, error) {
	id, err := cli.ProjectID(cmd, false)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return current{}, nil
	}
	project, err := c.App.ProjectService.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return current{Project: project}, nil
}

type exported struct {
	Project *models.Project `json:"project"`
}

func (e exported) GetID() int {
	return e.Project.ID
}

func (e exported) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "export %s=%d\n", cli.ProjectEnv, e.Project.ID)
	return err
}

type cleared struct{}

func (cleared) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "unset %s\n", cli.ProjectEnv)
	return err
}

type current struct {
	Project *models.Project `json:"project"`
}

func (c current) WriteHuman(w io.Writer) error {
	if c.Project == nil {
		_, err := fmt.Fprintf(w, "No project context set\nUse 'eval $(tablero use project <project-id>)' to set one\n")
		return err
	}
	_, err := fmt.Fprintf(w, "Current project: %d (%s)\n", c.Project.ID, c.Project.Name)
	return err
}
