package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polldemo/pkg/script"
)

func plainReporter(t *testing.T) (*Reporter, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return New(&buf), &buf
}

func TestBanner(t *testing.T) {
	r, buf := plainReporter(t)
	r.Banner("DEMO")

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, "DEMO", lines[1])
	assert.Equal(t, strings.Repeat("=", 60), lines[2])
	assert.Equal(t, "", lines[3])
}

func TestSectionUnderlineMatchesTitle(t *testing.T) {
	r, buf := plainReporter(t)
	r.Section("PROJECT ANALYSIS")

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "PROJECT ANALYSIS", lines[0])
	assert.Equal(t, strings.Repeat("-", len("PROJECT ANALYSIS")), lines[1])
}

func TestNumberedList(t *testing.T) {
	r, buf := plainReporter(t)
	r.NumberedList([]string{"first", "second"})

	assert.Contains(t, buf.String(), " 1. first\n")
	assert.Contains(t, buf.String(), " 2. second\n")
}

func TestBulletList(t *testing.T) {
	r, buf := plainReporter(t)
	r.BulletList([]string{"Colored CLI output"})

	assert.Contains(t, buf.String(), "  + Colored CLI output\n")
}

func TestCommandList(t *testing.T) {
	r, buf := plainReporter(t)
	r.CommandList([]script.CommandEntry{
		{Command: "cargo check", Description: "Validate Rust code compilation"},
	})

	out := buf.String()
	assert.Contains(t, out, "Validate Rust code compilation\n")
	assert.Contains(t, out, "cargo check\n")
}

func TestOutputIsDeterministic(t *testing.T) {
	r1, buf1 := plainReporter(t)
	r2, buf2 := plainReporter(t)
	items := []string{"a", "b", "c"}

	r1.Banner("T")
	r1.BulletList(items)
	r2.Banner("T")
	r2.BulletList(items)

	assert.Equal(t, buf1.String(), buf2.String())
}
