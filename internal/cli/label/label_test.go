package label

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestCreateLabel(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID, _ := testutil.CreateTestProject(t, db, "Board")
	project := strconv.Itoa(projectID)

	output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"--project", project, "--name", "bug", "--color", "#FF0000", "--quiet",
	})
	require.NoError(t, err)
	id, err := strconv.Atoi(strings.TrimSpace(output))
	require.NoError(t, err)
	assert.Positive(t, id)

	output, err = clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"--project", project, "--name", "feature", "--json",
	})
	require.NoError(t, err)
	data := clitest.Data(t, output)
	assert.Equal(t, "feature", data["name"])
	assert.Equal(t, "#7D56F4", data["color"])

	output, err = clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--project", project, "--name", "docs"})
	require.NoError(t, err)
	assert.Contains(t, output, "docs")
	assert.Contains(t, output, "created")
}

func TestCreateLabelErrors(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID, _ := testutil.CreateTestProject(t, db, "Board")
	project := strconv.Itoa(projectID)
	testutil.CreateTestLabel(t, db, projectID, "bug", "#FF0000")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"bad color", []string{"--project", project, "--name", "x", "--color", "red"}, cli.ExitValidation},
		{"short color", []string{"--project", project, "--name", "x", "--color", "#FFF"}, cli.ExitValidation},
		{"empty name", []string{"--project", project, "--name", ""}, cli.ExitValidation},
		{"duplicate", []string{"--project", project, "--name", "bug"}, cli.ExitConflict},
		{"missing project", []string{"--project", "999", "--name", "x"}, cli.ExitNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCodeFor(err))
		})
	}
}

func TestListLabels(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID, _ := testutil.CreateTestProject(t, db, "Board")
	project := strconv.Itoa(projectID)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", project})
	require.NoError(t, err)
	assert.Contains(t, output, "No labels found")

	first := testutil.CreateTestLabel(t, db, projectID, "bug", "#FF0000")
	second := testutil.CreateTestLabel(t, db, projectID, "api", "#00FF00")

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", project, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(second)+"\n"+strconv.Itoa(first)+"\n", output)
}

func TestUpdateAndDeleteLabel(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID, columns := testutil.CreateTestProject(t, db, "Board")
	labelID := strconv.Itoa(testutil.CreateTestLabel(t, db, projectID, "bug", "#FF0000"))
	taskID := testutil.CreateTestTask(t, db, columns[0], "fix")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{labelID, "--color", "#00FF00", "--json"})
	require.NoError(t, err)
	data := clitest.Data(t, output)
	assert.Equal(t, "#00FF00", data["color"])
	assert.Equal(t, "bug", data["name"])

	_, err = clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{labelID})
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	_, err = clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{labelID, "--color", "green"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

	_, err = clitest.ExecuteCLICommand(t, app, AttachCmd(), []string{"--task", strconv.Itoa(taskID), "--label", labelID})
	require.NoError(t, err)

	output, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{labelID})
	require.NoError(t, err)
	assert.Contains(t, output, "Label 'bug' deleted")

	detail, err := app.TaskService.GetTaskDetail(t.Context(), taskID)
	require.NoError(t, err)
	assert.Empty(t, detail.Labels)
}

func TestAttachDetachLabel(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID, columns := testutil.CreateTestProject(t, db, "Board")
	otherID, _ := testutil.CreateTestProject(t, db, "Other")
	labelID := testutil.CreateTestLabel(t, db, projectID, "bug", "#FF0000")
	foreign := testutil.CreateTestLabel(t, db, otherID, "ops", "#0000FF")
	taskID := testutil.CreateTestTask(t, db, columns[0], "fix")
	task := strconv.Itoa(taskID)

	output, err := clitest.ExecuteCLICommand(t, app, AttachCmd(), []string{"--task", task, "--label", strconv.Itoa(labelID)})
	require.NoError(t, err)
	assert.Contains(t, output, "attached to task #"+task)

	detail, err := app.TaskService.GetTaskDetail(t.Context(), taskID)
	require.NoError(t, err)
	require.Len(t, detail.Labels, 1)
	assert.Equal(t, "bug", detail.Labels[0].Name)

	_, err = clitest.ExecuteCLICommand(t, app, AttachCmd(), []string{"--task", task, "--label", strconv.Itoa(foreign)})
	assert.Equal(t, cli.ExitConflict, cli.ExitCodeFor(err))

	_, err = clitest.ExecuteCLICommand(t, app, AttachCmd(), []string{"--task", task, "--label", "999"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))

	output, err = clitest.ExecuteCLICommand(t, app, DetachCmd(), []string{"--task", task, "--label", strconv.Itoa(labelID), "--json"})
	require.NoError(t, err)
	assert.Equal(t, false, clitest.Data(t, output)["attached"])

	detail, err = app.TaskService.GetTaskDetail(t.Context(), taskID)
	require.NoError(t, err)
	assert.Empty(t, detail.Labels)
}

func TestListLabels_ProjectFromEnv(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID, _ := testutil.CreateTestProject(t, db, "Board")
	testutil.CreateTestLabel(t, db, projectID, "bug", "#FF0000")

	t.Setenv(cli.ProjectEnv, strconv.Itoa(projectID))
	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "bug")

	t.Setenv(cli.ProjectEnv, "")
	_, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	t.Setenv(cli.ProjectEnv, "three")
	_, err = clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
}
