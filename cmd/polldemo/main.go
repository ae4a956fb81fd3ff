// Package main implements the command-line interface for the polling project
// demo reporter. It parses arguments, loads the demo script (built-in default
// or a YAML override), runs the narrated analysis, and optionally exports the
// collected report as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"polldemo/pkg/demo"
	"polldemo/pkg/project"
	"polldemo/pkg/runner"
	"polldemo/pkg/script"
)

func main() {
	dir := flag.String("dir", ".", "Project directory to analyze")
	scriptPath := flag.String("script", "", "Path to a YAML demo script overriding the built-in content")
	execute := flag.Bool("run", false, "Execute the build/test command list instead of only printing it")
	timeout := flag.Duration("timeout", 0, "Per-command timeout when -run is set (0 = no timeout)")
	exportPath := flag.String("export", "", "Write the collected report as JSON to this path")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Setup structured logging
	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *noColor {
		color.NoColor = true
	}

	// 1. Load the demo script
	s := script.Default()
	if *scriptPath != "" {
		slog.Info("Loading demo script", "path", *scriptPath)
		loaded, err := script.LoadFromFile(*scriptPath)
		if err != nil {
			slog.Error("Failed to load demo script", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
		s = loaded
	}

	// 2. Run the narrated analysis
	report, err := demo.Run(context.Background(), s, demo.Options{
		Dir:     *dir,
		Execute: *execute,
		Out:     os.Stdout,
		Runner:  &runner.Runner{Timeout: *timeout},
	})
	if err != nil {
		if errors.Is(err, project.ErrNotProjectRoot) {
			// The user-facing message was already printed.
			os.Exit(1)
		}
		slog.Error("Demo run failed", "error", err)
		os.Exit(1)
	}

	// 3. Export the report if requested
	if *exportPath != "" {
		if err := exportReport(report, *exportPath); err != nil {
			slog.Error("Failed to export report", "path", *exportPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Report exported", "path", *exportPath)
	}
}

// exportReport serializes the report as indented JSON and writes it to path.
func exportReport(report *demo.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
