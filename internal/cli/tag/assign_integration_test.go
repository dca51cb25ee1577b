package tag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/testutil"
	testutilcli "github.com/avelar/tarea/internal/testutil/cli"
)

// TestAssignTagCommand tests the assign command end to end
func TestAssignTagCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, db, "Gets tagged", "TODO")
	tagID := testutil.CreateTestTag(t, db, "existing", "")

	cmd := AssignCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--task", "1", "--tag", "existing"})
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "✓ Tag 'existing' assigned to task 1")

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM task_tags WHERE task_id = ? AND tag_id = ?",
		taskID, tagID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAssignTagCommand_CreatesMissingTag(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTask(t, db, "Gets a new tag", "TODO")

	cmd := AssignCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--task", "1", "--tag", "brandnew", "--quiet"})
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tags WHERE name = 'brandnew'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Assigning an unknown tag should create it")
}

func TestAssignTagCommand_Idempotent(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, db, "Tagged twice", "TODO")
	tagID := testutil.CreateTestTag(t, db, "repeat", "")
	testutil.AssignTestTag(t, db, taskID, tagID)

	// A second assignment of the same tag is a quiet success
	cmd := AssignCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--task", "1", "--tag", "repeat", "--quiet"})
	require.NoError(t, err, "Re-assign should succeed")

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM task_tags WHERE task_id = ? AND tag_id = ?",
		taskID, tagID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Re-assign should not add a second row")
}

func TestAssignTagCommand_TaskNotFound(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	cmd := AssignCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--task", "999", "--tag", "whatever", "--json"})
	require.Error(t, err, "Unknown task should fail")
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}

func TestAssignTagCommand_JSON(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTask(t, db, "JSON target", "TODO")

	cmd := AssignCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--task", "1", "--tag", "jsontag", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.True(t, result["success"].(bool))

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "jsontag", data["tag"])
}
