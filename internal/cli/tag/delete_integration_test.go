package tag

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/testutil"
	testutilcli "github.com/avelar/tarea/internal/testutil/cli"
)

// TestDeleteTagCommand tests the delete command end to end
func TestDeleteTagCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, db, "Keeps living", "TODO")
	tagID := testutil.CreateTestTag(t, db, "doomed", "")
	testutil.AssignTestTag(t, db, taskID, tagID)

	cmd := DeleteCmd()
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--name", "doomed", "--yes"})
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "✓ Tag 'doomed' deleted")

	var tagCount, assignCount, taskCount int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tags WHERE id = ?", tagID).Scan(&tagCount)
	require.NoError(t, err)
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM task_tags WHERE tag_id = ?", tagID).Scan(&assignCount)
	require.NoError(t, err)
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tasks WHERE id = ?", taskID).Scan(&taskCount)
	require.NoError(t, err)

	assert.Equal(t, 0, tagCount, "Tag row should be gone")
	assert.Equal(t, 0, assignCount, "Assignments should go with the tag")
	assert.Equal(t, 1, taskCount, "Task should survive tag deletion")
}

func TestDeleteTagCommand_DeclinedConfirmation(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutil.CreateTestTag(t, db, "spared", "")

	cmd := DeleteCmd()
	cmd.SetIn(strings.NewReader("n\n"))
	output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--name", "spared"})
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tags WHERE name = 'spared'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Tag should survive a declined confirmation")
}

func TestDeleteTagCommand_NotFound(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	cmd := DeleteCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--name", "ghost", "--yes", "--json"})
	require.Error(t, err, "Unknown tag should fail")
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}
