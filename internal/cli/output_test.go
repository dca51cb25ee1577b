package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-outC
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stderr = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stderr = oldStderr
	return <-outC
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, result map[string]interface{})
	}{
		{
			name: "map data",
			data: map[string]interface{}{"test": "value", "number": float64(42)},
			validate: func(t *testing.T, result map[string]interface{}) {
				if !result["success"].(bool) {
					t.Error("Expected success to be true")
				}
				dataMap := result["data"].(map[string]interface{})
				if dataMap["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", dataMap["test"])
				}
			},
		},
		{
			name: "struct with ID",
			data: mockDataWithID{ID: 123, Name: "Test"},
			validate: func(t *testing.T, result map[string]interface{}) {
				if !result["success"].(bool) {
					t.Error("Expected success to be true")
				}
				dataMap := result["data"].(map[string]interface{})
				if dataMap["Name"] != "Test" {
					t.Errorf("Expected data.Name to be 'Test', got %v", dataMap["Name"])
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, result map[string]interface{}) {
				if result["data"] != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", result["data"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}

			output := captureStdout(t, func() {
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Success returned error: %v", err)
				}
			})

			var result map[string]interface{}
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
			}
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}

	output := captureStdout(t, func() {
		if err := formatter.Success(mockDataWithID{ID: 42, Name: "Task"}); err != nil {
			t.Errorf("Success returned error: %v", err)
		}
	})

	if strings.TrimSpace(output) != "42" {
		t.Errorf("Expected quiet output '42', got %q", output)
	}
}

func TestOutputFormatter_Success_QuietWithoutID(t *testing.T) {
	// Data without GetID falls through to the human format
	formatter := &OutputFormatter{Quiet: true}

	output := captureStdout(t, func() {
		if err := formatter.Success(mockDataWithoutID{Name: "x", Value: 1}); err != nil {
			t.Errorf("Success returned error: %v", err)
		}
	})

	if !strings.Contains(output, "x") {
		t.Errorf("Expected fallback output to contain data, got %q", output)
	}
}

// ============================================================================
// Message Method Tests
// ============================================================================

func TestOutputFormatter_Message(t *testing.T) {
	t.Run("human mode prints the line", func(t *testing.T) {
		formatter := &OutputFormatter{}
		output := captureStdout(t, func() {
			if err := formatter.Message("✓ Task deleted"); err != nil {
				t.Errorf("Message returned error: %v", err)
			}
		})
		if strings.TrimSpace(output) != "✓ Task deleted" {
			t.Errorf("Expected message line, got %q", output)
		}
	})

	t.Run("quiet mode prints nothing", func(t *testing.T) {
		formatter := &OutputFormatter{Quiet: true}
		output := captureStdout(t, func() {
			if err := formatter.Message("✓ Task deleted"); err != nil {
				t.Errorf("Message returned error: %v", err)
			}
		})
		if output != "" {
			t.Errorf("Expected no output in quiet mode, got %q", output)
		}
	})

	t.Run("json mode wraps the message", func(t *testing.T) {
		formatter := &OutputFormatter{JSON: true}
		output := captureStdout(t, func() {
			if err := formatter.Message("✓ Task deleted"); err != nil {
				t.Errorf("Message returned error: %v", err)
			}
		})

		var result map[string]interface{}
		if err := json.Unmarshal([]byte(output), &result); err != nil {
			t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
		}
		if !result["success"].(bool) {
			t.Error("Expected success to be true")
		}
		dataMap := result["data"].(map[string]interface{})
		if dataMap["message"] != "✓ Task deleted" {
			t.Errorf("Expected message in data, got %v", dataMap)
		}
	})
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := captureStdout(t, func() {
		if err := formatter.Error("TASK_NOT_FOUND", "task 99 not found"); err != nil {
			t.Errorf("Error returned error: %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	if result["success"].(bool) {
		t.Error("Expected success to be false")
	}
	errMap := result["error"].(map[string]interface{})
	if errMap["code"] != "TASK_NOT_FOUND" {
		t.Errorf("Expected error code TASK_NOT_FOUND, got %v", errMap["code"])
	}
	if errMap["message"] != "task 99 not found" {
		t.Errorf("Expected error message, got %v", errMap["message"])
	}
	if _, ok := errMap["suggestion"]; ok {
		t.Error("Expected no suggestion key when suggestion is empty")
	}
}

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := captureStdout(t, func() {
		err := formatter.ErrorWithSuggestion("UNKNOWN_STATUS",
			"unknown status \"WIP\"",
			"Run 'tarea status list' to see valid statuses")
		if err != nil {
			t.Errorf("ErrorWithSuggestion returned error: %v", err)
		}
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	errMap := result["error"].(map[string]interface{})
	if !strings.Contains(errMap["suggestion"].(string), "status list") {
		t.Errorf("Expected suggestion to mention status list, got %v", errMap["suggestion"])
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	formatter := &OutputFormatter{}

	stderr := captureStderr(t, func() {
		err := formatter.ErrorWithSuggestion("TAG_NOT_FOUND",
			"tag \"urgent\" not found",
			"Run 'tarea tag list' to see existing tags")
		if err != nil {
			t.Errorf("ErrorWithSuggestion returned error: %v", err)
		}
	})

	if !strings.Contains(stderr, "❌ Error: tag \"urgent\" not found") {
		t.Errorf("Expected error line on stderr, got %q", stderr)
	}
	if !strings.Contains(stderr, "💡 Suggestion: Run 'tarea tag list'") {
		t.Errorf("Expected suggestion line on stderr, got %q", stderr)
	}
}
