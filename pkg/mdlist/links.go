// Package mdlist implements the narrow, line-oriented Markdown heuristics used to
// maintain a curated link list: inline link extraction, heading-delimited
// sections, and bullet list items.
//
// It deliberately does not build a Markdown AST. The list format it targets is
// simple and the sorting and validation rules are defined in terms of lines.
package mdlist

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

//nolint:gochecknoglobals // Compiled patterns are package-level for reuse
var (
	inlineLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bareURLPattern    = regexp.MustCompile(`https?://[^\s)]+`)
)

// Link is one inline Markdown link of the form [Text](URL).
type Link struct {
	Text string
	URL  string
}

// ExtractLinks returns every inline link in content, in document order.
// URLs are returned exactly as written.
func ExtractLinks(content string) []Link {
	matches := inlineLinkPattern.FindAllStringSubmatch(content, -1)
	links := make([]Link, 0, len(matches))
	for _, match := range matches {
		links = append(links, Link{Text: match[1], URL: match[2]})
	}
	return links
}

// IsLocalTarget reports whether a link target points inside the repository:
// an in-page anchor or a relative path.
func IsLocalTarget(target string) bool {
	return strings.HasPrefix(target, "#") ||
		strings.HasPrefix(target, "./") ||
		strings.HasPrefix(target, "../")
}

// ExtractURLs returns the unique URLs referenced by content.
//
// Inline link targets come first, in document order, followed by bare
// http(s):// occurrences that were not already seen. Anchors and relative
// paths are excluded.
func ExtractURLs(content string) []string {
	var urls []string

	for _, link := range ExtractLinks(content) {
		if IsLocalTarget(link.URL) {
			continue
		}
		urls = append(urls, strings.TrimSpace(link.URL))
	}

	urls = append(urls, bareURLPattern.FindAllString(content, -1)...)

	return lo.Uniq(urls)
}
