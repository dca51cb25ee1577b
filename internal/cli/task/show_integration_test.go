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

// TestShowTaskCommand tests the show command end to end
func TestShowTaskCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	taskID := testutil.CreateTestTask(t, db, "Inspect me", "IN_PROGRESS")
	tagID := testutil.CreateTestTag(t, db, "backend", "#FF5733")
	testutil.AssignTestTag(t, db, taskID, tagID)

	prereqID := testutil.CreateTestTask(t, db, "Prerequisite", "TODO")
	dependentID := testutil.CreateTestTask(t, db, "Dependent", "TODO")
	testutil.CreateTestLink(t, db, taskID, prereqID)
	testutil.CreateTestLink(t, db, dependentID, taskID)

	t.Run("human card", func(t *testing.T) {
		cmd := ShowCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--id", strconv.Itoa(taskID)})
		require.NoError(t, err, "output: %s", output)

		for _, want := range []string{"Inspect me", "IN_PROGRESS", "[backend]", "Depends on", "Prerequisite", "Required by", "Dependent"} {
			assert.Contains(t, output, want)
		}
	})

	t.Run("positional argument", func(t *testing.T) {
		cmd := ShowCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{strconv.Itoa(taskID), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(taskID), strings.TrimSpace(output),
			"Quiet mode should print only the task ID")
	})

	t.Run("json detail", func(t *testing.T) {
		cmd := ShowCmd()
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd,
			[]string{"--id", strconv.Itoa(taskID), "--json"})
		require.NoError(t, err, "output: %s", output)

		result := testutil.ParseJSON(t, output)
		task := result["task"].(map[string]interface{})

		dependsOn := task["depends_on"].([]interface{})
		require.Len(t, dependsOn, 1)
		prereq := dependsOn[0].(map[string]interface{})
		assert.Equal(t, float64(prereqID), prereq["id"])

		requiredBy := task["required_by"].([]interface{})
		require.Len(t, requiredBy, 1)
		dependent := requiredBy[0].(map[string]interface{})
		assert.Equal(t, float64(dependentID), dependent["id"])
	})
}

func TestShowTaskCommand_Errors(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	t.Run("not found", func(t *testing.T) {
		cmd := ShowCmd()
		_, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{"--id", "404"})
		require.Error(t, err, "Missing task should fail")
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})

	t.Run("invalid positional id", func(t *testing.T) {
		cmd := ShowCmd()
		_, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{"abc"})
		require.Error(t, err, "Non-numeric id should fail")
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
	})

	t.Run("missing id", func(t *testing.T) {
		cmd := ShowCmd()
		_, err := testutilcli.ExecuteCLICommand(t, app, cmd, nil)
		require.Error(t, err, "Missing id should fail")
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
	})
}
