package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRootPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\n"), 0644))

	assert.NoError(t, CheckRoot(dir, "Cargo.toml"))
}

func TestCheckRootMissing(t *testing.T) {
	err := CheckRoot(t.TempDir(), "Cargo.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotProjectRoot)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	content := `
[package]
name = "polling-cli"
version = "0.1.0"
edition = "2021"

[dependencies]
clap = "4"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "polling-cli", m.Package.Name)
	assert.Equal(t, "polling-cli v0.1.0 (edition 2021)", m.Summary())
}

func TestLoadManifestPartialPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[package]\nname = \"polls\"\n"), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "polls", m.Summary())
}

func TestLoadManifestMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[package\nname ="), 0644))

	_, err := LoadManifest(path)
	require.Error(t, err)
}

func TestManifestSummaryEmpty(t *testing.T) {
	var m *Manifest
	assert.Equal(t, "", m.Summary())
	assert.Equal(t, "", (&Manifest{}).Summary())
}
