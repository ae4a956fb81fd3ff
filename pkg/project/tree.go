// This file implements the indented source tree preview: a depth-first listing
// of directories with a capped number of allow-listed files per directory.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TreeOptions controls which files the preview includes.
type TreeOptions struct {
	// Extensions is the allow-list of file suffixes shown in the preview.
	Extensions []string
	// FilesPerDir caps how many qualifying files are listed per directory.
	FilesPerDir int
}

// Tree walks the directory rooted at root and returns the indented listing.
// Hidden entries (names starting with a dot) are skipped entirely, files
// outside the extension allow-list are skipped, and at most FilesPerDir
// qualifying files are shown per directory in filesystem enumeration order.
// Traversal errors propagate to the caller.
func Tree(root string, opts TreeOptions) ([]string, error) {
	var lines []string
	if err := walkDir(root, filepath.Base(filepath.Clean(root)), 0, opts, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func walkDir(dir, name string, depth int, opts TreeOptions, lines *[]string) error {
	indent := strings.Repeat("  ", depth)
	*lines = append(*lines, indent+name+"/")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	shown := 0
	var subdirs []os.DirEntry
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}
		if shown >= opts.FilesPerDir {
			continue
		}
		if hasAllowedExtension(entry.Name(), opts.Extensions) {
			*lines = append(*lines, indent+"  "+entry.Name())
			shown++
		}
	}

	for _, sub := range subdirs {
		if err := walkDir(filepath.Join(dir, sub.Name()), sub.Name(), depth+1, opts, lines); err != nil {
			return err
		}
	}

	return nil
}

func hasAllowedExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, allowed := range extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
