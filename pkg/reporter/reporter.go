// Package reporter provides functions for formatting and writing the demo
// output blocks: banner, section headers, numbered and bulleted lists, and
// command blocks.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"polldemo/pkg/script"
)

const bannerWidth = 60

// Reporter writes formatted, colored text blocks to a writer.
type Reporter struct {
	w         io.Writer
	highlight func(a ...interface{}) string
	accent    func(a ...interface{}) string
	emphasis  func(a ...interface{}) string
	failure   func(a ...interface{}) string
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:         w,
		highlight: color.New(color.FgCyan, color.Bold).SprintFunc(),
		accent:    color.New(color.FgGreen).SprintFunc(),
		emphasis:  color.New(color.FgYellow).SprintFunc(),
		failure:   color.New(color.FgRed).SprintFunc(),
	}
}

// Banner prints the top-of-run banner: a rule, the title, a rule, blank line.
func (r *Reporter) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, r.highlight(title))
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w)
}

// Section prints a section title with a dashed underline.
func (r *Reporter) Section(title string) {
	fmt.Fprintln(r.w, r.highlight(title))
	fmt.Fprintln(r.w, strings.Repeat("-", len(title)))
}

// Line prints one formatted line.
func (r *Reporter) Line(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Blank prints an empty separator line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.w)
}

// NumberedList prints items as a right-aligned numbered list.
func (r *Reporter) NumberedList(items []string) {
	for i, item := range items {
		fmt.Fprintf(r.w, "%2d. %s\n", i+1, item)
	}
	fmt.Fprintln(r.w)
}

// BulletList prints items indented with a colored bullet.
func (r *Reporter) BulletList(items []string) {
	for _, item := range items {
		fmt.Fprintf(r.w, "  %s %s\n", r.accent("+"), item)
	}
	fmt.Fprintln(r.w)
}

// Steps prints workflow steps verbatim, indented.
func (r *Reporter) Steps(steps []string) {
	for _, step := range steps {
		fmt.Fprintf(r.w, "  %s\n", step)
	}
	fmt.Fprintln(r.w)
}

// CommandList prints each entry as a description line and a command line,
// separated by blank lines, without executing anything.
func (r *Reporter) CommandList(entries []script.CommandEntry) {
	for _, entry := range entries {
		fmt.Fprintln(r.w, entry.Description)
		fmt.Fprintf(r.w, "%s\n", r.emphasis(entry.Command))
		fmt.Fprintln(r.w)
	}
}

// TreeListing prints the indented directory preview lines.
func (r *Reporter) TreeListing(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w)
}

// Error prints a single user-facing error line.
func (r *Reporter) Error(message string) {
	fmt.Fprintln(r.w, r.failure(message))
}

// Footer prints closing lines between two rules.
func (r *Reporter) Footer(lines []string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.w, rule)
	for _, line := range lines {
		fmt.Fprintln(r.w, r.accent(line))
	}
	fmt.Fprintln(r.w, rule)
}
