// Package status holds the cli commands that expose the column name to
// status mapping, e.g. tablero status map "Waiting for QA"
package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	taskstatus "github.com/thenoetrevino/tablero/internal/status"
)

// StatusCmd returns the status parent command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Inspect task statuses",
	}
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(MapCmd())
	return cmd
}

// ListCmd returns the status list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the statuses every column maps to",
		Args:  cobra.NoArgs,
		RunE: handler.Pure(func(*cobra.Command, []string) (any, error) {
			var out statusList
			for _, s := range taskstatus.Valid() {
				out = append(out, mapping{Status: s, ColumnName: taskstatus.ColumnName(s)})
			}
			return out, nil
		}),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// MapCmd returns the status map subcommand
func MapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <column name>...",
		Short: "Show which status a column name maps to",
		Long: `Show which status a column name maps to. Each argument is one column name.

Examples:
  tablero status map "Waiting for QA" Deployed "On Hold"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.Pure(func(_ *cobra.Command, args []string) (any, error) {
			out := make(statusList, 0, len(args))
			for _, name := range args {
				out = append(out, mapping{Name: name, Status: taskstatus.FromColumnName(name)})
			}
			return out, nil
		}),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type mapping struct {
	Name       string            `json:"name,omitempty"`
	Status     taskstatus.Status `json:"status"`
	ColumnName string            `json:"column_name,omitempty"`
}

type statusList []mapping

func (l statusList) WriteHuman(w io.Writer) error {
	for _, m := range l {
		name := m.Name
		if name == "" {
			name = m.ColumnName
		}
		if _, err := fmt.Fprintf(w, "  %-24s %s\n", strings.TrimSpace(name), styles.RenderStatus(m.Status)); err != nil {
			return err
		}
	}
	return nil
}
