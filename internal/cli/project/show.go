package project

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a project's board",
		Long:  "Show a project with its columns, the status each column maps to, and its cards.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runShow),
	}
	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

type boardView struct {
	*models.Board
}

// GetID lets --quiet print the project ID
func (b boardView) GetID() int {
	return b.Project.ID
}

func (b boardView) WriteHuman(w io.Writer) error {
	fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("[%d] %s", b.Project.ID, b.Project.Name)))
	if b.Project.Description != "" {
		fmt.Fprintln(w, styles.SubtitleStyle.Render(b.Project.Description))
	}

	for _, col := range b.Columns {
		tasks := b.TasksIn(col.ID)
		fmt.Fprintf(w, "\n%s %s (%d)\n",
			styles.SectionStyle.Render(fmt.Sprintf("[%d] %s", col.ID, col.Name)),
			styles.RenderStatus(col.Status()),
			len(tasks))
		for _, t := range tasks {
			var labels []string
			for _, l := range t.Labels {
				labels = append(labels, styles.RenderLabelChip(l))
			}
			line := fmt.Sprintf("  %d. [%d] %s", t.Position+1, t.ID, t.Title)
			if len(labels) > 0 {
				line += " " + strings.Join(labels, " ")
			}
			if t.ChecklistTotal > 0 {
				line += styles.SubtitleStyle.Render(fmt.Sprintf(" (%d/%d)", t.ChecklistDone, t.ChecklistTotal))
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func runShow(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero project show <id>"}
	}
	styles.Init(c.Config.ColorScheme)

	board, err := c.App.ProjectService.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return boardView{board}, nil
}
