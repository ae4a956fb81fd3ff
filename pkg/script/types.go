// Package script defines the Go data structures that represent a demo script
// definition: the banner title, the command/feature/workflow lists the tool
// narrates, and the project settings used for the precondition check and the
// source tree preview. A built-in default script ships with the binary; a YAML
// file can override it wholesale.
package script

// ScriptWrapper represents a script file with a top-level 'script:' key.
// This is the preferred file layout, mirroring how other definition files
// in the ecosystem nest their payload under a single root key.
type ScriptWrapper struct {
	Script Script `yaml:"script" json:"script"`
}

// Script is the full content of one demo run. All fields are defined at
// start-up and never mutated afterwards.
type Script struct {
	Title    string          `yaml:"title" json:"title"`
	Project  ProjectSettings `yaml:"project,omitempty" json:"project,omitempty"`
	Commands []CommandEntry  `yaml:"commands,omitempty" json:"commands,omitempty"`
	Features []string        `yaml:"features,omitempty" json:"features,omitempty"`
	Examples []string        `yaml:"examples,omitempty" json:"examples,omitempty"`
	Workflow []string        `yaml:"workflow,omitempty" json:"workflow,omitempty"`
	Phases   []string        `yaml:"phases,omitempty" json:"phases,omitempty"`
	Closing  []string        `yaml:"closing,omitempty" json:"closing,omitempty"`
}

// CommandEntry pairs a shell command string with its human-readable description.
type CommandEntry struct {
	Command     string `yaml:"command" json:"command"`
	Description string `yaml:"description" json:"description"`
}

// ProjectSettings controls the root precondition check and the tree preview.
// Zero values fall back to the built-in defaults (Cargo.toml marker, the
// Rust/Foundry extension allow-list, three files per directory).
type ProjectSettings struct {
	Marker      string   `yaml:"marker,omitempty" json:"marker,omitempty"`
	Extensions  []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	FilesPerDir int      `yaml:"files_per_dir,omitempty" json:"files_per_dir,omitempty"`
}

// Defaults used when ProjectSettings fields are left unset.
const (
	DefaultMarker      = "Cargo.toml"
	DefaultFilesPerDir = 3
)

// DefaultExtensions is the fixed allow-list for the tree preview.
var DefaultExtensions = []string{".rs", ".sol", ".toml", ".json"}

// MarkerFile returns the configured marker file name or the default.
func (p ProjectSettings) MarkerFile() string {
	if p.Marker != "" {
		return p.Marker
	}
	return DefaultMarker
}

// AllowedExtensions returns the configured allow-list or the default.
func (p ProjectSettings) AllowedExtensions() []string {
	if len(p.Extensions) > 0 {
		return p.Extensions
	}
	return DefaultExtensions
}

// MaxFilesPerDir returns the per-directory file cap or the default.
func (p ProjectSettings) MaxFilesPerDir() int {
	if p.FilesPerDir > 0 {
		return p.FilesPerDir
	}
	return DefaultFilesPerDir
}
