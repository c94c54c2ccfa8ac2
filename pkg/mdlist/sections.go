package mdlist

import "strings"

// Section is a span of the document that starts at a heading line of a given
// level and runs until the next heading of that same level or the end of the
// document.
type Section struct {
	// Level is the number of leading '#' characters of the heading.
	Level int

	// Title is the heading text with the hashes and surrounding space removed.
	Title string

	// Heading is the raw heading line.
	Heading string

	// Lines holds the body lines following the heading line.
	Lines []string
}

// Body returns the section body joined with newlines.
func (s Section) Body() string {
	return strings.Join(s.Lines, "\n")
}

// HeadingTitle reports whether line is a heading of exactly the given level and
// returns its title. A heading is the level's run of '#' characters followed by
// at least one space or tab and some non-blank text.
func HeadingTitle(line string, level int) (string, bool) {
	if level < 1 || len(line) <= level {
		return "", false
	}
	if strings.Count(line[:level], "#") != level {
		return "", false
	}
	if line[level] != ' ' && line[level] != '\t' {
		return "", false
	}

	title := strings.TrimSpace(line[level:])
	if title == "" {
		return "", false
	}
	return title, true
}

// SplitLines splits content on '\n'. Joining the result with "\n" yields the
// original content byte for byte.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// SplitSections splits content at headings of exactly the given level.
//
// Lines before the first such heading are returned as the preamble. Headings of
// other levels do not start a new section; they are part of the body they fall
// in, so a level-3 heading stays inside its level-2 section.
func SplitSections(content string, level int) ([]string, []Section) {
	var (
		preamble []string
		sections []Section
	)

	for _, line := range SplitLines(content) {
		if title, ok := HeadingTitle(line, level); ok {
			sections = append(sections, Section{
				Level:   level,
				Title:   title,
				Heading: line,
			})
			continue
		}

		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.Lines = append(last.Lines, line)
	}

	return preamble, sections
}

// HasHeading reports whether any line of body is a heading of the given level.
func HasHeading(body string, level int) bool {
	for _, line := range SplitLines(body) {
		if _, ok := HeadingTitle(line, level); ok {
			return true
		}
	}
	return false
}
