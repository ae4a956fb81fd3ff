// Package demo wires the full narrated run: banner, root precondition,
// project analysis, and the static command/feature/workflow sections. The
// control flow is strictly sequential; the only blocking work is the optional
// subprocess execution of the build/test command list.
package demo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"polldemo/pkg/project"
	"polldemo/pkg/reporter"
	"polldemo/pkg/runner"
	"polldemo/pkg/script"
)

// RootErrorMessage is the single user-facing line printed when the marker
// file is absent from the working directory.
const RootErrorMessage = "Please run this script from the project root directory!"

// Options controls one demo run.
type Options struct {
	// Dir is the project directory to analyze; defaults to ".".
	Dir string
	// Execute runs the build/test command list through the shell instead of
	// only printing it.
	Execute bool
	// Out receives all report output; defaults to os.Stdout.
	Out io.Writer
	// Runner executes commands when Execute is set; a zero Runner is used
	// when nil.
	Runner *runner.Runner
}

// Report is the machine-readable summary of one run, written by the JSON
// export flag.
type Report struct {
	Title    string            `json:"title"`
	Manifest *project.Manifest `json:"manifest,omitempty"`
	Tree     []string          `json:"tree,omitempty"`
	Commands []*runner.Result  `json:"commands,omitempty"`
}

// Run executes the demo script against opts.Dir and returns the collected
// report. A missing marker file yields an error wrapping
// project.ErrNotProjectRoot after a single printed message; any directory
// traversal failure propagates unchanged.
func Run(ctx context.Context, s *script.Script, opts Options) (*Report, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	rep := reporter.New(out)
	report := &Report{Title: s.Title}

	rep.Banner(s.Title)

	marker := s.Project.MarkerFile()
	if err := project.CheckRoot(dir, marker); err != nil {
		if errors.Is(err, project.ErrNotProjectRoot) {
			rep.Error(RootErrorMessage)
		}
		return nil, err
	}

	rep.Section("PROJECT ANALYSIS")

	// The marker doubles as the manifest when it is a TOML file. A broken
	// manifest only degrades the summary, it never aborts the run.
	if filepath.Ext(marker) == ".toml" {
		manifest, err := project.LoadManifest(filepath.Join(dir, marker))
		if err != nil {
			slog.Warn("Failed to parse project manifest", "marker", marker, "error", err)
		} else if summary := manifest.Summary(); summary != "" {
			rep.Line("Package: %s", summary)
			report.Manifest = manifest
		}
	}

	rep.Line("Project Structure:")
	tree, err := project.Tree(dir, project.TreeOptions{
		Extensions:  s.Project.AllowedExtensions(),
		FilesPerDir: s.Project.MaxFilesPerDir(),
	})
	if err != nil {
		return nil, err
	}
	rep.TreeListing(tree)
	report.Tree = tree

	rep.Section("BUILD & TEST COMMANDS")
	if opts.Execute {
		run := opts.Runner
		if run == nil {
			run = &runner.Runner{}
		}
		if run.Out == nil {
			run.Out = out
		}
		for _, entry := range s.Commands {
			result := run.Run(ctx, entry.Command, entry.Description)
			report.Commands = append(report.Commands, result)
		}
	} else {
		rep.CommandList(s.Commands)
	}

	rep.Section("ENHANCED FEATURES ADDED")
	rep.BulletList(s.Features)

	rep.Section("EXAMPLE USAGE")
	rep.NumberedList(s.Examples)

	rep.Section("DEVELOPMENT WORKFLOW")
	rep.Steps(s.Workflow)

	rep.Section("NEXT DEVELOPMENT PHASES")
	rep.BulletList(s.Phases)

	rep.Footer(s.Closing)

	return report, nil
}
