package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/app"
	tablerocli "github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is passed through the context so commands use the test database.
// Returns stdout; stderr is discarded unless the command fails.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandFull(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandFull is ExecuteCLICommand returning stderr as well
func ExecuteCLICommandFull(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := tablerocli.WithApp(context.Background(), testApp)
	ctx = tablerocli.WithConfig(ctx, config.Default())

	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
