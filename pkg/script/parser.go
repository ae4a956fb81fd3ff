// This file handles loading script definitions from YAML files, parsing them
// into the defined Go structs, and performing basic validation.
package script

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a script definition from a YAML file path and unmarshals
// it into a Script. It handles both direct Script objects and wrapped objects
// (with a top-level 'script:' key).
func LoadFromFile(filePath string) (*Script, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file '%s': %w", filePath, err)
	}

	// Try parsing as a wrapper first (has 'script:' top-level key)
	var wrapper ScriptWrapper
	err = yaml.Unmarshal(data, &wrapper)
	if err == nil && wrapper.Script.Title != "" {
		if err := Validate(&wrapper.Script); err != nil {
			return nil, fmt.Errorf("validation failed for '%s': %w", filePath, err)
		}
		return &wrapper.Script, nil
	}

	// Otherwise try direct parse (no 'script:' wrapper)
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		fileName := filepath.Base(filePath)
		return nil, fmt.Errorf("YAML parsing error in '%s': %w", fileName, err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("validation failed for '%s': %w", filePath, err)
	}

	return &s, nil
}

// Validate performs basic structural validation of a Script.
func Validate(s *Script) error {
	if s == nil {
		return fmt.Errorf("nil Script cannot be validated")
	}

	if s.Title == "" {
		return fmt.Errorf("script title is required")
	}

	for i, entry := range s.Commands {
		if entry.Command == "" {
			return fmt.Errorf("commands[%d].command is required", i)
		}
		if entry.Description == "" {
			return fmt.Errorf("commands[%d].description is required", i)
		}
	}

	for i, example := range s.Examples {
		if example == "" {
			return fmt.Errorf("examples[%d] must not be empty", i)
		}
	}

	if s.Project.FilesPerDir < 0 {
		return fmt.Errorf("project.files_per_dir must not be negative")
	}

	return nil
}

// SaveToFile serializes a Script to YAML and writes it to a file. When
// asWrapper is true the content is nested under a top-level 'script:' key.
func SaveToFile(s *Script, filePath string, asWrapper bool) error {
	var data []byte
	var err error

	if asWrapper {
		data, err = yaml.Marshal(ScriptWrapper{Script: *s})
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal script to YAML: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to file '%s': %w", filePath, err)
	}

	return nil
}
