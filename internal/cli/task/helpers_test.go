package task

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/daykan/internal/app"
	"github.com/thenoetrevino/daykan/internal/cli"
	"github.com/thenoetrevino/daykan/internal/testutil"
	clitest "github.com/thenoetrevino/daykan/internal/testutil/cli"
)

// run executes `task <args...>` against testApp
func run(t *testing.T, testApp *app.App, args ...string) (string, error) {
	t.Helper()
	return clitest.ExecuteCLICommand(t, testApp, TaskCmd(), args)
}

// createTask creates a task through the CLI and returns its view
func createTask(t *testing.T, testApp *app.App, title string, column int) cli.TaskView {
	t.Helper()
	out, err := run(t, testApp, "create", "--title", title, "--column="+strconv.Itoa(column), "--json")
	require.NoError(t, err, out)

	var view cli.TaskView
	testutil.DecodeData(t, out, &view)
	return view
}

func errorCode(t *testing.T, out string) string {
	t.Helper()
	result := testutil.ParseJSON(t, out)
	errData, ok := result["error"].(map[string]any)
	require.True(t, ok, "expected error payload, got %s", out)
	return errData["code"].(string)
}
