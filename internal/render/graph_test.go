package render

import (
	"strings"
	"testing"

	"github.com/avelar/tarea/internal/models"
)

// ==== TEST CASES - GRAPH ====

func TestGraph_LayersFollowDependencies(t *testing.T) {
	t.Parallel()

	// 1 depends on 2, so 2 is the prerequisite and lands in layer 0.
	tasks := []*models.Task{
		{ID: 1, Title: "Ship feature", Status: "TODO"},
		{ID: 2, Title: "Write tests", Status: "IN_PROGRESS"},
	}
	links := []*models.TaskLink{
		{ID: 1, FromTaskID: 1, ToTaskID: 2, Type: models.LinkTypeDependency},
	}

	out := Graph(tasks, links, testScheme())

	if !strings.Contains(out, "── Layer 0 ──") || !strings.Contains(out, "── Layer 1 ──") {
		t.Fatalf("Expected two layer rules\n%s", out)
	}

	layer0 := out[strings.Index(out, "Layer 0"):strings.Index(out, "Layer 1")]
	if !strings.Contains(layer0, "Write tests") {
		t.Errorf("Expected prerequisite in layer 0\n%s", out)
	}
	if strings.Contains(layer0, "Ship feature") {
		t.Errorf("Expected dependent outside layer 0\n%s", out)
	}
}

func TestGraph_ConnectorsPointAtDependents(t *testing.T) {
	t.Parallel()

	tasks := []*models.Task{
		{ID: 1, Title: "Dependent", Status: "TODO"},
		{ID: 2, Title: "Prerequisite", Status: "TODO"},
	}
	links := []*models.TaskLink{
		{ID: 1, FromTaskID: 1, ToTaskID: 2, Type: models.LinkTypeDependency},
	}

	out := Graph(tasks, links, testScheme())

	if !strings.Contains(out, "└─▶ #1") {
		t.Errorf("Expected connector from prerequisite to dependent\n%s", out)
	}
	if strings.Contains(out, "└─▶ #2") {
		t.Errorf("Expected no connector pointing at the prerequisite\n%s", out)
	}
}

func TestGraph_IsolatedTasksInLayerZero(t *testing.T) {
	t.Parallel()

	tasks := []*models.Task{
		{ID: 5, Title: "Standalone", Status: "DONE"},
	}

	out := Graph(tasks, nil, testScheme())

	if !strings.Contains(out, "── Layer 0 ──") {
		t.Fatalf("Expected layer 0 rule\n%s", out)
	}
	if !strings.Contains(out, "#5 Standalone [DONE]") {
		t.Errorf("Expected node line with id, title and status\n%s", out)
	}
	if strings.Contains(out, "Layer 1") {
		t.Errorf("Expected a single layer\n%s", out)
	}
}

func TestGraph_DropsDanglingLinks(t *testing.T) {
	t.Parallel()

	// Task 9 is filtered out; its links must not be drawn.
	tasks := []*models.Task{
		{ID: 1, Title: "Visible", Status: "TODO"},
	}
	links := []*models.TaskLink{
		{ID: 1, FromTaskID: 1, ToTaskID: 9, Type: models.LinkTypeDependency},
		{ID: 2, FromTaskID: 9, ToTaskID: 1, Type: models.LinkTypeDependency},
	}

	out := Graph(tasks, links, testScheme())

	if strings.Contains(out, "#9") {
		t.Errorf("Expected hidden endpoint to stay hidden\n%s", out)
	}
	if strings.Contains(out, "└─▶") {
		t.Errorf("Expected no connectors for dangling links\n%s", out)
	}
	if !strings.Contains(out, "#1 Visible") {
		t.Errorf("Expected visible task to render\n%s", out)
	}
}

func TestGraph_TiesOrderedByIDWithinLayer(t *testing.T) {
	t.Parallel()

	tasks := []*models.Task{
		{ID: 7, Title: "Second", Status: "TODO"},
		{ID: 3, Title: "First", Status: "TODO"},
	}

	out := Graph(tasks, nil, testScheme())

	if strings.Index(out, "#3") > strings.Index(out, "#7") {
		t.Errorf("Expected ascending IDs within a layer\n%s", out)
	}
}

func TestGraph_DiamondKeepsSingleSink(t *testing.T) {
	t.Parallel()

	// 4 depends on 2 and 3; both depend on 1.
	tasks := []*models.Task{
		{ID: 1, Title: "Root", Status: "DONE"},
		{ID: 2, Title: "Left", Status: "TODO"},
		{ID: 3, Title: "Right", Status: "TODO"},
		{ID: 4, Title: "Sink", Status: "TODO"},
	}
	links := []*models.TaskLink{
		{ID: 1, FromTaskID: 2, ToTaskID: 1, Type: models.LinkTypeDependency},
		{ID: 2, FromTaskID: 3, ToTaskID: 1, Type: models.LinkTypeDependency},
		{ID: 3, FromTaskID: 4, ToTaskID: 2, Type: models.LinkTypeDependency},
		{ID: 4, FromTaskID: 4, ToTaskID: 3, Type: models.LinkTypeDependency},
	}

	out := Graph(tasks, links, testScheme())

	for _, rule := range []string{"── Layer 0 ──", "── Layer 1 ──", "── Layer 2 ──"} {
		if !strings.Contains(out, rule) {
			t.Fatalf("Expected rule %q\n%s", rule, out)
		}
	}
	if strings.Contains(out, "Layer 3") {
		t.Errorf("Expected three layers for a diamond\n%s", out)
	}

	// Root fans out to both middle tasks
	rootSection := out[:strings.Index(out, "Layer 1")]
	if !strings.Contains(rootSection, "└─▶ #2") || !strings.Contains(rootSection, "└─▶ #3") {
		t.Errorf("Expected root connectors to #2 and #3\n%s", out)
	}
}

func TestGraph_NoTasks(t *testing.T) {
	t.Parallel()

	out := Graph(nil, nil, testScheme())

	if !strings.Contains(out, "No tasks to graph") {
		t.Errorf("Expected empty message, got %q", out)
	}
}
