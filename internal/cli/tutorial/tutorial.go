// Package tutorial prints the tablero quick reference
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/markdown"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Print the tablero quick reference",
		Long: `Print the tablero quick reference as markdown.

The raw markdown suits scripts and coding agents; --render styles it for
the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			render, _ := cmd.Flags().GetBool("render")
			width, _ := cmd.Flags().GetInt("width")

			out := tutorialContent
			if render {
				out = markdown.RenderOrRaw(tutorialContent, width, markdown.StyleAuto)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Bool("render", false, "Style the markdown for the terminal")
	cmd.Flags().Int("width", 80, "Wrap width when rendering")
	return cmd
}
