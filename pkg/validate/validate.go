// Package validate checks the structure of a curated Markdown list: required
// badge and sections, duplicate entries, HTTPS usage, alphabetical ordering,
// entry name length and, optionally, in-page anchors.
package validate

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdcurate/pkg/mdlist"
)

// Issue is one human-readable problem found in the document.
type Issue string

// Rules parameterizes the checklist.
type Rules struct {
	// Badge must appear verbatim somewhere in the document.
	Badge string

	// RequiredSections are "## " headings that must be present.
	RequiredSections []string

	// ExemptSections are skipped by the ordering check.
	ExemptSections []string

	// MaxNameLength is the longest link text accepted, in characters.
	MaxNameLength int

	// CheckAnchors enables the in-page anchor check.
	CheckAnchors bool
}

// Default rule values.
const (
	DefaultBadge         = "[![Awesome](https://awesome.re/badge.svg)]"
	DefaultMaxNameLength = 100
)

// DefaultRules returns the standard awesome-list checklist.
func DefaultRules() Rules {
	return Rules{
		Badge:            DefaultBadge,
		RequiredSections: []string{"Contents", "Contributing"},
		ExemptSections:   []string{"Contents", "Contributing", "License"},
		MaxNameLength:    DefaultMaxNameLength,
	}
}

// Report is the outcome of validating one document.
type Report struct {
	// File is the path of the validated document.
	File string

	// Links is the number of inline links found.
	Links int

	// Issues are all findings in discovery order.
	Issues []Issue
}

// Passed reports whether no issues were found.
func (r *Report) Passed() bool {
	return len(r.Issues) == 0
}

// Validator runs the checklist against documents.
type Validator struct {
	rules Rules
}

// New creates a Validator for the given rules.
func New(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// Validate evaluates every rule against content. It never stops early: all
// findings are collected in the order the rules run.
func (v *Validator) Validate(file, content string) *Report {
	links := mdlist.ExtractLinks(content)

	report := &Report{
		File:  file,
		Links: len(links),
	}

	report.Issues = append(report.Issues, CheckRequired(content, v.rules)...)
	report.Issues = append(report.Issues, CheckDuplicates(links)...)
	report.Issues = append(report.Issues, CheckHTTPS(links)...)
	report.Issues = append(report.Issues, CheckOrder(content, v.rules.ExemptSections)...)
	report.Issues = append(report.Issues, CheckNameLength(links, v.rules.MaxNameLength)...)

	if v.rules.CheckAnchors {
		report.Issues = append(report.Issues, CheckAnchors(content, links)...)
	}

	return report
}

// CheckRequired reports a missing badge or required section heading.
func CheckRequired(content string, rules Rules) []Issue {
	var issues []Issue

	if rules.Badge != "" && !strings.Contains(content, rules.Badge) {
		issues = append(issues, "Missing awesome badge")
	}

	for _, name := range rules.RequiredSections {
		if strings.Contains(content, "## "+name) {
			continue
		}
		issues = append(issues, missingSectionIssue(name))
	}

	return issues
}

func missingSectionIssue(name string) Issue {
	if name == "Contents" {
		return "Missing table of contents"
	}
	return Issue(fmt.Sprintf("Missing %s section", strings.ToLower(name)))
}

// CheckDuplicates reports URLs used by more than one link and names (compared
// case-insensitively) that point at more than one URL. Each duplicate is
// reported once, in order of first appearance.
func CheckDuplicates(links []mdlist.Link) []Issue {
	var (
		urlOrder  []string
		nameOrder []string
		byURL     = make(map[string][]string)
		byName    = make(map[string][]string)
	)

	for _, link := range links {
		if _, seen := byURL[link.URL]; !seen {
			urlOrder = append(urlOrder, link.URL)
		}
		byURL[link.URL] = append(byURL[link.URL], link.Text)

		name := strings.ToLower(link.Text)
		if _, seen := byName[name]; !seen {
			nameOrder = append(nameOrder, name)
		}
		byName[name] = append(byName[name], link.URL)
	}

	var issues []Issue

	for _, target := range urlOrder {
		if names := byURL[target]; len(names) > 1 {
			issues = append(issues, Issue(fmt.Sprintf("Duplicate URL: %s used for: %s",
				target, strings.Join(names, ", "))))
		}
	}

	for _, name := range nameOrder {
		if targets := byName[name]; len(targets) > 1 {
			issues = append(issues, Issue(fmt.Sprintf("Duplicate name: %s used for: %s",
				name, strings.Join(targets, ", "))))
		}
	}

	return issues
}

// CheckHTTPS flags plain-http links whose host is not a loopback address.
// Findings are introduced by a single header issue.
func CheckHTTPS(links []mdlist.Link) []Issue {
	var flagged []Issue

	for _, link := range links {
		parsed, err := url.Parse(link.URL)
		if err != nil || parsed.Scheme != "http" {
			continue
		}
		if isLoopback(parsed.Hostname()) {
			continue
		}
		flagged = append(flagged, Issue(fmt.Sprintf("  - %s: %s", link.Text, link.URL)))
	}

	if len(flagged) == 0 {
		return nil
	}

	return append([]Issue{"HTTP links found (consider HTTPS):"}, flagged...)
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// CheckOrder reports sections whose entries are not in case-insensitive
// alphabetical order.
//
// Sections named in exempt are skipped. When a section contains "### "
// subsections, only the subsections are checked; entries placed directly under
// the section heading are then ignored.
func CheckOrder(content string, exempt []string) []Issue {
	var issues []Issue

	_, sections := mdlist.SplitSections(content, 2)
	for _, section := range sections {
		if slices.Contains(exempt, section.Title) {
			continue
		}

		body := section.Body()
		if !mdlist.HasHeading(body, 3) {
			if !isOrdered(mdlist.ItemNames(body)) {
				issues = append(issues, Issue(fmt.Sprintf(
					"Section '%s' is not alphabetically ordered", section.Title)))
			}
			continue
		}

		_, subsections := mdlist.SplitSections(body, 3)
		for _, sub := range subsections {
			if !isOrdered(mdlist.ItemNames(sub.Body())) {
				issues = append(issues, Issue(fmt.Sprintf(
					"Subsection '%s' in '%s' is not alphabetically ordered", sub.Title, section.Title)))
			}
		}
	}

	return issues
}

// isOrdered reports whether names are non-decreasing under case-insensitive
// comparison.
func isOrdered(names []string) bool {
	for i := 1; i < len(names); i++ {
		if strings.ToLower(names[i-1]) > strings.ToLower(names[i]) {
			return false
		}
	}
	return true
}

// CheckNameLength flags link text longer than maxLength characters.
func CheckNameLength(links []mdlist.Link, maxLength int) []Issue {
	if maxLength <= 0 {
		return nil
	}

	var issues []Issue
	for _, link := range links {
		if length := utf8.RuneCountInString(link.Text); length > maxLength {
			issues = append(issues, Issue(fmt.Sprintf("%s: Name too long (%d chars)", link.Text, length)))
		}
	}
	return issues
}

// CheckAnchors flags in-page links whose target matches no heading anchor.
func CheckAnchors(content string, links []mdlist.Link) []Issue {
	var anchors *mdlist.Anchors

	var issues []Issue
	for _, link := range links {
		if !strings.HasPrefix(link.URL, "#") {
			continue
		}
		if anchors == nil {
			anchors = mdlist.HeadingAnchors([]byte(content))
		}

		target := strings.TrimPrefix(link.URL, "#")
		if unescaped, err := url.PathUnescape(target); err == nil {
			target = unescaped
		}
		if anchors.Has(target) {
			continue
		}
		issues = append(issues, Issue(fmt.Sprintf("Broken anchor: %s -> %s", link.Text, link.URL)))
	}
	return issues
}
