// Package runner executes narrated shell commands and prints their captured
// output. Command failures are never propagated to the caller: every outcome,
// including a failure to launch the shell at all, is converted into printed
// diagnostics so one broken command cannot abort the narration.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result captures everything observed about one command execution.
type Result struct {
	Command     string    `json:"command"`
	Description string    `json:"description"`
	Stdout      string    `json:"stdout,omitempty"`
	Stderr      string    `json:"stderr,omitempty"`
	ExitCode    int       `json:"exit_code"`
	LaunchError string    `json:"launch_error,omitempty"`
	StartTime   time.Time `json:"start_time"`
	Duration    float64   `json:"duration_seconds"`
	Success     bool      `json:"success"`
}

// Runner shells out command strings and prints their captured streams.
type Runner struct {
	// Shell is the interpreter invoked with -c; defaults to "sh".
	Shell string
	// Timeout bounds each command; zero means wait indefinitely.
	Timeout time.Duration
	// Out receives the printed blocks; defaults to os.Stdout.
	Out io.Writer
}

// Run executes the command through the shell, prints the description, the
// command, any captured stdout/stderr, and the exit code when non-zero. It
// always returns a Result and never an error: launch failures are printed as
// a diagnostic line and recorded on the Result.
func (r *Runner) Run(ctx context.Context, command, description string) *Result {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	fmt.Fprintln(out, description)
	fmt.Fprintf(out, "Command: %s\n", command)
	fmt.Fprintln(out, strings.Repeat("-", 40))

	result := &Result{
		Command:     command,
		Description: description,
		StartTime:   time.Now(),
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	result.Duration = time.Since(result.StartTime).Seconds()

	switch e := err.(type) {
	case nil:
		result.Success = true
	case *exec.ExitError:
		result.ExitCode = e.ExitCode()
	default:
		// The shell itself could not be started.
		result.ExitCode = -1
		result.LaunchError = err.Error()
		slog.Error("Failed to launch command", "command", command, "error", err)
	}

	if result.Stdout != "" {
		fmt.Fprint(out, result.Stdout)
		if !strings.HasSuffix(result.Stdout, "\n") {
			fmt.Fprintln(out)
		}
	}
	if result.Stderr != "" {
		fmt.Fprintf(out, "STDERR: %s", result.Stderr)
		if !strings.HasSuffix(result.Stderr, "\n") {
			fmt.Fprintln(out)
		}
	}
	if result.LaunchError != "" {
		fmt.Fprintf(out, "Error running command: %s\n", result.LaunchError)
	} else if result.ExitCode != 0 {
		fmt.Fprintf(out, "Exit code: %d\n", result.ExitCode)
		slog.Warn("Command exited non-zero", "command", command, "exit_code", result.ExitCode)
	}
	fmt.Fprintln(out)

	return result
}
