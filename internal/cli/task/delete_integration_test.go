package task

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/avelar/tarea/internal/cli"
	"github.com/avelar/tarea/internal/testutil"
	testutilcli "github.com/avelar/tarea/internal/testutil/cli"
)

// TestDeleteTaskCommand tests the delete command end to end
func TestDeleteTaskCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)

	t.Run("delete with --yes", func(t *testing.T) {
		taskID := testutil.CreateTestTask(t, db, "Doomed", "TODO")

		cmd := DeleteCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--id", strconv.Itoa(taskID), "--yes"})
		require.NoError(t, err, "output: %s", output)
		assert.Contains(t, output, "deleted")

		var count int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM tasks WHERE id = ?", taskID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count, "Task row should be gone")
	})

	t.Run("quiet skips confirmation", func(t *testing.T) {
		taskID := testutil.CreateTestTask(t, db, "Quiet delete", "DONE")

		cmd := DeleteCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--id", strconv.Itoa(taskID), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(taskID), strings.TrimSpace(output))
	})

	t.Run("declined confirmation keeps the task", func(t *testing.T) {
		taskID := testutil.CreateTestTask(t, db, "Survivor", "TODO")

		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("n\n"))
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--id", strconv.Itoa(taskID)})
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		var count int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM tasks WHERE id = ?", taskID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "Task should survive a declined confirmation")
	})

	t.Run("not found", func(t *testing.T) {
		cmd := DeleteCmd()
		_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--id", "99999", "--yes"})
		require.Error(t, err, "Missing task should fail")
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})
}

func TestDeleteTaskCommand_CleansUpAssignmentsAndLinks(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)

	taskID := testutil.CreateTestTask(t, db, "Linked and tagged", "TODO")
	otherID := testutil.CreateTestTask(t, db, "Neighbor", "TODO")
	tagID := testutil.CreateTestTag(t, db, "keepme", "")
	testutil.AssignTestTag(t, db, taskID, tagID)
	testutil.CreateTestLink(t, db, taskID, otherID)

	cmd := DeleteCmd()
	_, err := testutilcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--id", strconv.Itoa(taskID), "--yes"})
	require.NoError(t, err)

	var assignments, links, tags int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM task_tags WHERE task_id = ?", taskID).Scan(&assignments)
	require.NoError(t, err)
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM task_links WHERE from_task_id = ? OR to_task_id = ?",
		taskID, taskID).Scan(&links)
	require.NoError(t, err)
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tags WHERE id = ?", tagID).Scan(&tags)
	require.NoError(t, err)

	assert.Equal(t, 0, assignments, "Assignments should be cleaned up")
	assert.Equal(t, 0, links, "Links touching the task should be cleaned up")
	assert.Equal(t, 1, tags, "The tag itself should survive")
}
