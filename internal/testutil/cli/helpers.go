package cli

import (
	"testing"

	"github.com/thenoetrevino/tablero/internal/testutil"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// Data returns the "data" object of a successful JSON response
func Data(t *testing.T, output string) map[string]any {
	t.Helper()
	result := testutil.ParseJSON(t, output)
	if result["success"] != true {
		t.Fatalf("Expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected data object, got: %s", output)
	}
	return data
}
