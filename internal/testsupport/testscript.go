// Package testsupport provides helpers for testscript-based CLI tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/nhaseem/taskman/roster"
)

var (
	buildOnce   sync.Once
	taskmanPath string
	buildErr    error
)

// BuildTaskman builds the taskman binary once and returns its path.
func BuildTaskman(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "taskman-bin-")
		if err != nil {
			buildErr = err
			return
		}

		taskmanPath = filepath.Join(binDir, "taskman")
		cmd := exec.Command("go", "build", "-o", taskmanPath, "./cmd/taskman")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build taskman: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return taskmanPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TASKMAN", BuildTaskman(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	dataDir := filepath.Join(homeDir, ".local", "share", "taskman")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("TASKMAN_DATA_DIR", dataDir)
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdStaffID finds a staff member by name in a JSON listing and stores
// the ID in an env var.
func CmdStaffID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("staffid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: staffid FILE NAME VAR")
	}

	var members []roster.Staff
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &members); err != nil {
		ts.Fatalf("parse staff list: %v", err)
	}

	name := args[1]
	for _, member := range members {
		if member.Name == name {
			ts.Setenv(args[2], member.ID)
			return
		}
	}

	ts.Fatalf("staff member named %q not found", name)
}

// CmdTaskID finds a task by title in a JSON listing and stores the ID
// in an env var.
func CmdTaskID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: taskid FILE TITLE VAR")
	}

	var tasks []roster.EnrichedTask
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		ts.Fatalf("parse task list: %v", err)
	}

	title := args[1]
	for _, task := range tasks {
		if task.Title == title {
			ts.Setenv(args[2], task.ID)
			return
		}
	}

	ts.Fatalf("task titled %q not found", title)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
