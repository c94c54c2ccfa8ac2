package pretty

import (
	"strings"

	"github.com/yaklabco/mdcurate/pkg/diff"
)

// FormatDiff renders a unified diff with per-line coloring.
func (s *Styles) FormatDiff(unified *diff.Unified) string {
	text := unified.String()
	if text == "" {
		return ""
	}

	lines := strings.SplitAfter(text, "\n")

	var out strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		newline := line[len(body):]

		switch {
		case strings.HasPrefix(body, "--- "), strings.HasPrefix(body, "+++ "):
			out.WriteString(s.DiffHeader.Render(body))
		case strings.HasPrefix(body, "@@"):
			out.WriteString(s.DiffHunk.Render(body))
		case strings.HasPrefix(body, "+"):
			out.WriteString(s.DiffAdd.Render(body))
		case strings.HasPrefix(body, "-"):
			out.WriteString(s.DiffRemove.Render(body))
		default:
			out.WriteString(body)
		}
		out.WriteString(newline)
	}

	return out.String()
}
