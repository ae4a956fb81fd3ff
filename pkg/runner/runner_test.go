package runner

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}

	result := r.Run(context.Background(), "echo ok", "Say ok")

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "ok\n", result.Stdout)

	out := buf.String()
	assert.Contains(t, out, "Say ok")
	assert.Contains(t, out, "Command: echo ok")
	assert.Contains(t, out, "ok")
}

func TestRunCapturesStderr(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}

	result := r.Run(context.Background(), "echo oops 1>&2", "Emit stderr")

	assert.True(t, result.Success)
	assert.Equal(t, "oops\n", result.Stderr)
	assert.Contains(t, buf.String(), "STDERR: oops")
}

func TestRunPreservesExitCode(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}

	result := r.Run(context.Background(), "exit 3", "Fail on purpose")

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, buf.String(), "Exit code: 3")
}

func TestRunLaunchFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Shell: "/nonexistent/shell", Out: &buf}

	result := r.Run(context.Background(), "echo ok", "Broken shell")

	assert.False(t, result.Success)
	assert.Equal(t, -1, result.ExitCode)
	assert.NotEmpty(t, result.LaunchError)
	assert.Contains(t, buf.String(), "Error running command:")
}

func TestRunTimeout(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Timeout: 100 * time.Millisecond, Out: &buf}

	result := r.Run(context.Background(), "sleep 5", "Hang")

	assert.False(t, result.Success)
	assert.Less(t, result.Duration, 5.0)
}
