// Package label holds all cli commands related to labels
// e.g., tablero label ...
package label

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(AttachCmd())
	cmd.AddCommand(DetachCmd())

	return cmd
}

type labelResult struct {
	*models.Label
	verb string
}

func (r labelResult) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Label %s %s (ID: %d)\n", styles.RenderLabelChip(r.Label), r.verb, r.ID)
	return err
}

// validateColor checks a --color flag before it reaches the service
func validateColor(color string) error {
	if color == "" {
		return nil
	}
	if err := cli.ValidateColorHex(color); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	return nil
}
