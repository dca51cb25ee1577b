package task

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/testutil"
	testutilcli "github.com/avelar/tarea/internal/testutil/cli"
)

// TestListTasksCommand tests the list command end to end
func TestListTasksCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)

	todoID := testutil.CreateTestTask(t, db, "Open work", "TODO")
	doneID := testutil.CreateTestTask(t, db, "Finished work", "DONE")
	tagID := testutil.CreateTestTag(t, db, "backend", "")
	testutil.AssignTestTag(t, db, todoID, tagID)

	t.Run("lists everything", func(t *testing.T) {
		cmd := ListCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd, nil)
		require.NoError(t, err, "output: %s", output)
		assert.Contains(t, output, "Found 2 tasks")
		assert.Contains(t, output, "Open work")
		assert.Contains(t, output, "Finished work")
	})

	t.Run("status filter", func(t *testing.T) {
		cmd := ListCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--status", "todo"})
		require.NoError(t, err)
		assert.Contains(t, output, "Open work")
		assert.NotContains(t, output, "Finished work")
	})

	t.Run("tag filter", func(t *testing.T) {
		cmd := ListCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--tag", "backend"})
		require.NoError(t, err)
		assert.Contains(t, output, "Open work")
		assert.NotContains(t, output, "Finished work")
	})

	t.Run("quiet prints IDs only", func(t *testing.T) {
		cmd := ListCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--status", "done", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(doneID), strings.TrimSpace(output))
	})

	t.Run("json lists tasks", func(t *testing.T) {
		cmd := ListCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{"--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		tasks := result["tasks"].([]interface{})
		assert.Len(t, tasks, 2)
	})
}

func TestListTasksCommand_EmptyResult(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	cmd := ListCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd, nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")
}

func TestListTasksCommand_UnknownStatusFailsLoudly(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	cmd := ListCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--status", "nonsense"})
	require.Error(t, err, "Unknown status filter should fail instead of returning nothing")
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestListTasksCommand_BadDate(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	cmd := ListCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--created-after", "last tuesday"})
	require.Error(t, err, "Malformed date should fail")
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
}

func TestListTasksCommand_DateRange(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTask(t, db, "Recent", "TODO")

	// Tasks created today fall inside a window ending today
	cmd := ListCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--created-after", "2000-01-01"})
	require.NoError(t, err)
	assert.Contains(t, output, "Recent")

	cmd = ListCmd()
	output, err = testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--created-before", "2000-01-01"})
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")
}
