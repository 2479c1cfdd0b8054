package label

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

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels in a project",
		RunE:  handler.Command(runList),
	}
	cli.AddProjectFlag(cmd, "Project ID")
	cli.AddOutputFlags(cmd)
	return cmd
}

type labelList []*models.Label

func (l labelList) WriteHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No labels found")
		return err
	}
	fmt.Fprintf(w, "  %-4s %-20s %s\n", "ID", "Name", "Color")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 40))
	for _, lbl := range l {
		fmt.Fprintf(w, "  %-4d %-20s %s\n", lbl.ID, lbl.Name, lbl.Color)
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectID(cmd, true)
	if err != nil {
		return nil, err
	}
	labels, err := c.App.LabelService.GetLabelsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return labelList(labels), nil
}
