package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestListStatuses(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, output)["data"].([]any)
	require.Len(t, data, 5)
	assert.Equal(t, "to_do", data[0].(map[string]any)["status"])
	assert.Equal(t, "In Review", data[2].(map[string]any)["column_name"])

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "Blocked")
}

func TestMapStatuses(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, MapCmd(), []string{"Waiting for QA", "Deployed", "On Hold", "Random Column", "--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, output)["data"].([]any)
	var got []string
	for _, m := range data {
		got = append(got, m.(map[string]any)["status"].(string))
	}
	assert.Equal(t, []string{"in_review", "done", "blocked", "to_do"}, got)

	output, err = clitest.ExecuteCLICommand(t, app, MapCmd(), []string{"In-Progress"})
	require.NoError(t, err)
	assert.Contains(t, output, "In-Progress")

	_, err = clitest.ExecuteCLICommand(t, app, MapCmd(), []string{})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))
}
