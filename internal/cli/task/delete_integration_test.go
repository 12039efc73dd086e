package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/daykan/internal/cli"
	clitest "github.com/thenoetrevino/daykan/internal/testutil/cli"
)

func TestDeleteTask(t *testing.T) {
	_, testApp, _ := clitest.SetupCLITest(t)
	task := createTask(t, testApp, "doomed", 0)

	out, err := run(t, testApp, "delete", itoa(task.ID), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, itoa(task.ID)+"\n", out)

	out, err = run(t, testApp, "show", itoa(task.ID), "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Equal(t, "TASK_NOT_FOUND", errorCode(t, out))

	_, err = run(t, testApp, "delete", itoa(task.ID), "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

func TestDeleteTask_ArchivedIsRejected(t *testing.T) {
	_, testApp, fake := clitest.SetupCLITest(t)
	task := createTask(t, testApp, "kept forever", 0)
	fake.Advance(24 * time.Hour)

	out, err := run(t, testApp, "delete", itoa(task.ID), "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotEditable, cli.ExitCodeFor(err))
	assert.Equal(t, "NOT_EDITABLE", errorCode(t, out))

	_, err = run(t, testApp, "show", itoa(task.ID), "--json")
	assert.NoError(t, err, "archived task still exists")
}
