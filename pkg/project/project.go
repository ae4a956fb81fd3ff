// Package project inspects the target project directory: the root marker
// precondition, the Cargo manifest summary, and the source tree preview.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrNotProjectRoot indicates the marker file is absent from the working
// directory, i.e. the tool was not started from the project root.
var ErrNotProjectRoot = errors.New("project root marker not found")

// CheckRoot verifies that the marker file exists in dir. This is the single
// precondition gate before any analysis output is produced.
func CheckRoot(dir, marker string) error {
	_, err := os.Stat(filepath.Join(dir, marker))
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: missing %s in %s", ErrNotProjectRoot, marker, dir)
	}
	return fmt.Errorf("failed to check for marker file '%s': %w", marker, err)
}

// Manifest holds the subset of a Cargo.toml manifest the analysis summarizes.
type Manifest struct {
	Package PackageInfo `toml:"package" json:"package"`
}

// PackageInfo mirrors the [package] table of a Cargo manifest.
type PackageInfo struct {
	Name    string `toml:"name" json:"name"`
	Version string `toml:"version" json:"version,omitempty"`
	Edition string `toml:"edition" json:"edition,omitempty"`
}

// LoadManifest parses the Cargo manifest at path. Missing optional fields are
// tolerated; only an unreadable or malformed file is an error.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	return &m, nil
}

// Summary renders the one-line manifest description used in the analysis
// section, e.g. "polling-cli v0.1.0 (edition 2021)".
func (m *Manifest) Summary() string {
	if m == nil || m.Package.Name == "" {
		return ""
	}
	s := m.Package.Name
	if m.Package.Version != "" {
		s += " v" + m.Package.Version
	}
	if m.Package.Edition != "" {
		s += fmt.Sprintf(" (edition %s)", m.Package.Edition)
	}
	return s
}
