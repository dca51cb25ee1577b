package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/testutil"
	testutilcli "github.com/avelar/tarea/internal/testutil/cli"
)

// TestKanbanCommand renders populated and empty columns in board order
func TestKanbanCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTask(t, db, "Write the parser", "TODO")
	testutil.CreateTestTask(t, db, "Wire the storage", "IN_PROGRESS")
	testutil.CreateTestTask(t, db, "Ship the release", "DONE")

	cmd := KanbanCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{})
	require.NoError(t, err, "output: %s", output)

	// All four seeded columns appear, left to right in board order
	headers := []string{"TODO (1)", "IN_PROGRESS (1)", "BLOCKED (0)", "DONE (1)"}
	last := -1
	for _, header := range headers {
		idx := strings.Index(output, header)
		require.NotEqual(t, -1, idx, "Column header %q should appear", header)
		assert.Greater(t, idx, last, "Column %q should sit to the right of the previous one", header)
		last = idx
	}

	// The empty BLOCKED column still gets a placeholder
	assert.Contains(t, output, "No tasks")
	assert.Contains(t, output, "Write the parser")
}

func TestKanbanCommand_StatusFilterNarrowsColumns(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTask(t, db, "Open item", "TODO")
	testutil.CreateTestTask(t, db, "Closed item", "DONE")

	cmd := KanbanCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--status", "done"})
	require.NoError(t, err)

	assert.Contains(t, output, "DONE (1)")
	assert.NotContains(t, output, "TODO", "Other columns should be hidden")
	assert.NotContains(t, output, "Open item")
}

func TestKanbanCommand_TagFilterKeepsColumns(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	tagged := testutil.CreateTestTask(t, db, "Tagged work", "TODO")
	testutil.CreateTestTask(t, db, "Untagged work", "TODO")
	tagID := testutil.CreateTestTag(t, db, "urgent", "")
	testutil.AssignTestTag(t, db, tagged, tagID)

	cmd := KanbanCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--tag", "urgent"})
	require.NoError(t, err)

	// Every column survives a tag filter, only the tasks narrow
	assert.Contains(t, output, "TODO (1)")
	assert.Contains(t, output, "DONE (0)")
	assert.Contains(t, output, "Tagged work")
	assert.NotContains(t, output, "Untagged work")
}

func TestKanbanCommand_JSON(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTask(t, db, "Structured", "TODO")

	cmd := KanbanCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	columns := result["columns"].([]interface{})
	require.Len(t, columns, 4)

	first := columns[0].(map[string]interface{})
	assert.Equal(t, "TODO", first["status"])

	tasks := first["tasks"].([]interface{})
	assert.Len(t, tasks, 1)
}

func TestKanbanCommand_UnknownStatus(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	cmd := KanbanCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--status", "bogus", "--json"})
	require.Error(t, err, "Unknown status filter should fail")
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}
