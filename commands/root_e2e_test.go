//go:build e2e
// +build e2e

package commands

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-countdown/internal/testing/e2e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	binaryPath := filepath.Join(t.TempDir(), "go-countdown")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, "../cmd")
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "Failed to build binary: %s", string(output))
	return binaryPath
}

func startTimer(t *testing.T, binary, dataDir string, args ...string) *e2e.TUITestSession {
	t.Helper()
	session, err := e2e.NewTUITestSession(&e2e.TUITestConfig{
		Command: binary,
		Args:    append([]string{"--data-dir", dataDir, "--no-bell", "--timezone", "UTC"}, args...),
	})
	require.NoError(t, err)
	t.Cleanup(func() { session.Stop() })
	return session
}

// TestTimerCountsToTargetAndLogs starts a short countdown, waits for completion
// and checks the start was persisted
func TestTimerCountsToTargetAndLogs(t *testing.T) {
	binary := buildBinary(t)
	dataDir := t.TempDir()

	session := startTimer(t, binary, dataDir, "--target", "2")
	require.NoError(t, session.WaitForScreen("READY", 5*time.Second))
	assert.Contains(t, session.Screen(), "Target seconds: 2")

	require.NoError(t, session.SendKey(e2e.KeySpace))
	require.NoError(t, session.WaitForScreen("RUNNING", 3*time.Second))
	require.NoError(t, session.WaitForScreen("DONE", 6*time.Second))
	assert.Contains(t, session.Screen(), "00:02")
	assert.Contains(t, session.Screen(), "Run log (1)")

	require.NoError(t, session.SendKey('q'))
	require.NoError(t, session.WaitForExit(3*time.Second))

	out, err := exec.Command(binary, "log", "--data-dir", dataDir, "--output", "csv").CombinedOutput()
	require.NoError(t, err, string(out))
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.Contains(t, lines[1], "Timer started - ")
}

// TestTimerEditTargetAndLoop drives the target editor and loop toggle
func TestTimerEditTargetAndLoop(t *testing.T) {
	binary := buildBinary(t)
	session := startTimer(t, binary, t.TempDir())

	require.NoError(t, session.WaitForScreen("[ ] Loop mode", 5*time.Second))

	require.NoError(t, session.SendKey('l'))
	require.NoError(t, session.WaitForScreen("[x] Loop mode", 3*time.Second))

	require.NoError(t, session.SendString("t42"))
	require.NoError(t, session.WaitForScreen("Target seconds: 42█", 3*time.Second))
	require.NoError(t, session.SendKey(e2e.KeyEnter))
	require.NoError(t, session.WaitForScreen("Target set to 42s", 3*time.Second))

	require.NoError(t, session.SendKey('h'))
	require.NoError(t, session.WaitForScreen("toggle loop mode", 3*time.Second))
	require.NoError(t, session.SendKey(e2e.KeyEscape))
	require.NoError(t, session.WaitForScreen("Run log (0)", 3*time.Second))

	require.NoError(t, session.SendKey(e2e.KeyCtrlC))
	require.NoError(t, session.WaitForExit(3*time.Second))
}

// TestTimerRejectsBadFlags checks flag validation happens before the screen opens
func TestTimerRejectsBadFlags(t *testing.T) {
	binary := buildBinary(t)

	out, err := exec.Command(binary, "--data-dir", t.TempDir(), "--time-format", "36h").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "invalid time format")

	out, err = exec.Command(binary, "--data-dir", t.TempDir(), "--timezone", "Nowhere/City").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "invalid timezone")
}
