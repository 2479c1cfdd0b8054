package label

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a new label with a name and color.

Examples:
  tablero label create --name="bug" --color="#FF0000" --project=1

  # Quiet mode for bash capture
  LABEL_ID=$(tablero label create --name="bug" --project=1 --quiet)
`,
		RunE: handler.Command(runCreate),
	}

	cli.AddProjectFlag(cmd, "Project ID")
	cmd.Flags().String("name", "", "Label name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("color", "", "Label color in hex format #RRGGBB (default: "+labelservice.DefaultColor+")")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, _ []string) (any, error) {
	projectID, err := cli.ProjectID(cmd, true)
	if err != nil {
		return nil, err
	}
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")

	if err := validateColor(color); err != nil {
		return nil, err
	}

	label, err := c.App.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{
		ProjectID: projectID,
		Name:      name,
		Color:     color,
	})
	if err != nil {
		return nil, err
	}
	return labelResult{Label: label, verb: "created"}, nil
}
