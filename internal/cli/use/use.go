// Package use holds the commands that set shell context
//
// e.g., tablero use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Set context for the current shell session",
		Long: `Set context that later commands pick up, so flags need not be repeated.

Examples:
  eval $(tablero use project 3)        # --project defaults to 3
  eval $(tablero use project --clear)
  tablero use project --show`,
	}

	cmd.AddCommand(ProjectCmd())

	return cmd
}
