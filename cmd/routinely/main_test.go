package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `timezone: UTC
routines:
  - title: Water plants
    notify_at: "18:30"
    weekdays: sat,sun
  - title: Stretch
`

// buildBinary builds the CLI once per test, or uses ROUTINELY_BIN when set.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	if bin := os.Getenv("ROUTINELY_BIN"); bin != "" {
		return bin
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	bin := filepath.Join(t.TempDir(), "routinely")
	out, err := exec.Command("go", "build", "-o", bin, ".").CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to build binary: %v\nOutput: %s", err, out)
	}
	return bin
}

// isolatedEnv points HOME at tempDir and drops ROUTINELY_ overrides from the caller.
func isolatedEnv(tempDir string) []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "ROUTINELY_") {
			continue
		}
		env = append(env, e)
	}
	return append(env, fmt.Sprintf("HOME=%s", tempDir))
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

func TestEndToEndWorkflow(t *testing.T) {
	bin := buildBinary(t)
	tempDir := t.TempDir()
	env := isolatedEnv(tempDir)

	cfgPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out := runCmd(t, bin, env, "--config", cfgPath, "today")
	if !strings.Contains(out, "Water plants") || !strings.Contains(out, "Stretch") {
		t.Errorf("today output missing configured routines:\n%s", out)
	}

	out = runCmd(t, bin, env, "--config", cfgPath, "stats", "--format", "yaml")
	if !strings.Contains(out, "title: Water plants") || !strings.Contains(out, "18:30") {
		t.Errorf("stats yaml output unexpected:\n%s", out)
	}

	out = runCmd(t, bin, env, "--config", cfgPath, "calendar", "--month", "2026-02")
	if !strings.Contains(out, "February 2026") {
		t.Errorf("calendar output unexpected:\n%s", out)
	}

	out = runCmd(t, bin, env, "--config", cfgPath, "doctor")
	if !strings.Contains(out, "All checks passed") {
		t.Errorf("doctor output unexpected:\n%s", out)
	}

	if info, err := os.Stat(filepath.Join(tempDir, "logs")); err != nil || !info.IsDir() {
		t.Errorf("expected log directory next to config: %v", err)
	}
}

func TestInvalidMonthExitCode(t *testing.T) {
	bin := buildBinary(t)
	tempDir := t.TempDir()

	cmd := exec.Command(bin, "--config", filepath.Join(tempDir, "missing.yaml"), "calendar", "--month", "March")
	cmd.Env = isolatedEnv(tempDir)
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v\nOutput: %s", err, out)
	}
	if exitErr.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2\nOutput: %s", exitErr.ExitCode(), out)
	}
	if !strings.HasPrefix(string(out), "Error: invalid month") {
		t.Errorf("unexpected output: %s", out)
	}
}
