// Package sorter orders the entries of a curated Markdown list alphabetically
// within each level-2 section.
package sorter

import (
	"slices"
	"strings"

	"github.com/yaklabco/mdcurate/pkg/mdlist"
)

// sectionLevel is the heading level that delimits sortable sections.
const sectionLevel = 2

// Result describes the outcome of sorting a document.
type Result struct {
	// Content is the reassembled document.
	Content string

	// Runs is the number of contiguous list runs found inside sections.
	Runs int

	// RunsReordered is the number of runs whose order changed.
	RunsReordered int
}

// Changed reports whether sorting modified the document.
func (r Result) Changed() bool {
	return r.RunsReordered > 0
}

// Sort returns content with every list run inside a "## " section ordered by
// its sort key. Text before the first section heading is left alone.
func Sort(content string) string {
	return SortDocument(content).Content
}

// SortDocument sorts content and reports what changed.
//
// Each maximal run of consecutive list item lines is sorted on its own. Any
// other line (prose, blank lines, "###" headings) ends the current run and is
// kept exactly where it was. The output differs from the input only in the
// order of list lines.
func SortDocument(content string) Result {
	lines := mdlist.SplitLines(content)
	out := make([]string, 0, len(lines))

	var (
		result    Result
		run       []string
		inSection bool
	)

	flush := func() {
		if len(run) == 0 {
			return
		}
		sorted := SortItems(run)
		result.Runs++
		if !slices.Equal(sorted, run) {
			result.RunsReordered++
		}
		out = append(out, sorted...)
		run = nil
	}

	for _, line := range lines {
		if _, ok := mdlist.HeadingTitle(line, sectionLevel); ok {
			flush()
			inSection = true
			out = append(out, line)
			continue
		}

		if inSection && mdlist.IsListItem(line) {
			run = append(run, line)
			continue
		}

		flush()
		out = append(out, line)
	}
	flush()

	result.Content = strings.Join(out, "\n")
	return result
}

// SortItems returns a sorted copy of items ordered by mdlist.SortKey.
// Items with equal keys keep their relative order.
func SortItems(items []string) []string {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return strings.Compare(mdlist.SortKey(a), mdlist.SortKey(b))
	})
	return sorted
}

// IsSorted reports whether content is already in sorted order.
func IsSorted(content string) bool {
	return !SortDocument(content).Changed()
}
