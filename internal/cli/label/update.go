package label

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	labelservice "github.com/thenoetrevino/tablero/internal/services/label"
)

// UpdateCmd returns the label update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Rename or recolor a label",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runUpdate),
	}
	cmd.Flags().Int("id", 0, "Label ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("color", "", "New color in hex format #RRGGBB")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	id, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{Message: err.Error(), Suggestion: "Usage: tablero label update <id> --name=..."}
	}

	req := labelservice.UpdateLabelRequest{ID: id}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		if err := validateColor(color); err != nil {
			return nil, err
		}
		req.Color = &color
	}
	if req.Name == nil && req.Color == nil {
		return nil, &cli.UsageError{Message: "nothing to update", Suggestion: "Pass --name and/or --color"}
	}

	if err := c.App.LabelService.UpdateLabel(ctx, req); err != nil {
		return nil, err
	}
	label, err := c.App.LabelService.GetLabelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return labelResult{Label: label, verb: "updated"}, nil
}
