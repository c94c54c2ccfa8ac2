package mdlist

import (
	"regexp"
	"strings"
)

// listItemPrefix marks a catalog entry: a bullet that opens with a link.
const listItemPrefix = "- ["

//nolint:gochecknoglobals // Compiled patterns are package-level for reuse
var (
	bracketTextPattern = regexp.MustCompile(`\[([^\]]+)\]`)
	itemNamePattern    = regexp.MustCompile(`(?m)^- \[([^\]]+)\]`)
)

// IsListItem reports whether line is a catalog entry. Leading and trailing
// whitespace is ignored, so indented entries count as well.
func IsListItem(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), listItemPrefix)
}

// SortKey returns the comparison key of a list line: the lowercased text inside
// its first [...] bracket, or the whole lowercased line when it has none.
func SortKey(line string) string {
	if match := bracketTextPattern.FindStringSubmatch(line); match != nil {
		return strings.ToLower(match[1])
	}
	return strings.ToLower(line)
}

// ItemNames returns the link text of every entry in body that starts at the
// beginning of a line with "- [". Indented entries are not included.
func ItemNames(body string) []string {
	matches := itemNamePattern.FindAllStringSubmatch(body, -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}
