package cli

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// ParseID reads a positive integer ID from the first positional argument,
// falling back to the named flag
func ParseID(cmd *cobra.Command, args []string, flag string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("invalid ID %q: must be a positive integer", args[0])
		}
		return id, nil
	}

	id, _ := cmd.Flags().GetInt(flag)
	if id <= 0 {
		return 0, fmt.Errorf("--%s is required and must be a positive integer", flag)
	}
	return id, nil
}

// ParseIDList parses "3,1,2" into []int{3, 1, 2}
func ParseIDList(s string) ([]int, error) {
	var ids []int
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid ID %q in list", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ID list is empty")
	}
	return ids, nil
}

// ParseDueDate parses YYYY-MM-DD or RFC 3339
func ParseDueDate(s string) (*time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q: use YYYY-MM-DD", s)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// ProjectEnv holds the project chosen with 'tablero use project'
const ProjectEnv = "TABLERO_PROJECT"

// AddProjectFlag registers --project, which defaults to $TABLERO_PROJECT
func AddProjectFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().Int("project", 0, usage+" (default $"+ProjectEnv+")")
}

// ProjectID returns --project, falling back to $TABLERO_PROJECT.
// When required, having neither is a usage error; otherwise it yields 0.
func ProjectID(cmd *cobra.Command, required bool) (int, error) {
	if cmd.Flags().Changed("project") {
		id, _ := cmd.Flags().GetInt("project")
		return id, nil
	}
	if v := os.Getenv(ProjectEnv); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("%w: %s=%q is not a project ID", ErrInvalidData, ProjectEnv, v)
		}
		return id, nil
	}
	if required {
		return 0, &UsageError{
			Message:    "--project is required",
			Suggestion: "Pass --project or run: eval $(tablero use project <id>)",
		}
	}
	return 0, nil
}
