package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdcurate/pkg/linkcheck"
)

// DefaultURLWidth is the number of URL characters shown per progress line.
const DefaultURLWidth = 60

const (
	minURLWidth    = 20
	progressIndent = 24
	bannerRule     = 50
	sectionRule    = 30
)

// URLWidth returns how many URL characters fit on a progress line. It is
// DefaultURLWidth unless writer is a terminal too narrow for that.
func URLWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok || !isTerminal(writer) {
		return DefaultURLWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultURLWidth
	}

	return max(minURLWidth, min(DefaultURLWidth, width-progressIndent))
}

// Truncate shortens s to limit characters, marking the cut with "...".
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// LinkConsole prints the progress and summary of a links run.
type LinkConsole struct {
	w        io.Writer
	styles   *Styles
	urlWidth int
}

// NewLinkConsole creates a LinkConsole writing to w.
func NewLinkConsole(w io.Writer, styles *Styles, urlWidth int) *LinkConsole {
	if urlWidth <= 0 {
		urlWidth = DefaultURLWidth
	}
	return &LinkConsole{w: w, styles: styles, urlWidth: urlWidth}
}

func (c *LinkConsole) println(parts ...string) {
	_, _ = fmt.Fprintln(c.w, strings.Join(parts, ""))
}

func (c *LinkConsole) rule(char string, width int) string {
	return c.styles.Rule.Render(strings.Repeat(char, width))
}

// Banner prints the title block and URL count.
func (c *LinkConsole) Banner(title string, urls int) {
	c.println(c.styles.Title.Render("🔗 " + title + " Link Validator"))
	c.println(c.rule("=", bannerRule))
	c.println(fmt.Sprintf("Found %d unique URLs to validate", urls))
	c.println()
	c.println(c.styles.Heading.Render("🔍 Validating URLs..."))
	c.println(c.rule("-", sectionRule))
}

// Progress prints one line per event: the URL before its check and the
// outcome after it.
func (c *LinkConsole) Progress(event linkcheck.Event) {
	if event.Result == nil {
		c.println(fmt.Sprintf("[%d/%d] Checking: ", event.Index, event.Total),
			c.styles.URL.Render(Truncate(event.URL, c.urlWidth)))
		return
	}

	outcome := fmt.Sprintf("%d - %s", event.Result.StatusCode, event.Result.Message)
	if event.Result.Failed() {
		c.println("    ", c.styles.Failure.Render("❌ "+outcome))
		return
	}
	c.println("    ", c.styles.Success.Render("✅ "+outcome))
}

// Summary prints totals, categories and failures.
func (c *LinkConsole) Summary(summary linkcheck.Summary) {
	c.println()
	c.println(c.rule("=", bannerRule))
	c.println(c.styles.Title.Render("📊 VALIDATION SUMMARY"))
	c.println(c.rule("=", bannerRule))

	c.println(fmt.Sprintf("Total URLs checked: %d", summary.Total))
	c.println(c.styles.Success.Render("Successful:"), fmt.Sprintf(" %d (%.1f%%)", summary.Succeeded, summary.SuccessRate()))
	c.println(c.styles.Failure.Render("Failed:"), fmt.Sprintf(" %d (%.1f%%)", summary.Failed, summary.FailureRate()))

	c.println()
	c.println(c.styles.Heading.Render("📂 URLs by Category:"))
	for _, category := range summary.Categories {
		c.println("  ", c.styles.Label.Render(category.Label+":"),
			fmt.Sprintf(" %d URLs", category.URLs),
			c.styles.Dim.Render(fmt.Sprintf(" (%d %s)", category.Domains, plural(category.Domains, "domain", "domains"))))
	}

	if len(summary.Failures) == 0 {
		c.println()
		c.println(c.styles.Success.Render("🎉 All URLs are working correctly!"))
		return
	}

	c.println()
	c.println(c.styles.Failure.Render(fmt.Sprintf("❌ FAILED URLs (%d):", len(summary.Failures))))
	c.println(c.rule("-", sectionRule))
	for _, failure := range summary.Failures {
		c.println("• ", c.styles.URL.Render(failure.URL))
		c.println(fmt.Sprintf("  Status: %d - %s", failure.StatusCode, failure.Message))
		c.println()
	}
}

// ReportSaved prints where the report file went.
func (c *LinkConsole) ReportSaved(path string) {
	c.println()
	c.println("📄 Detailed report saved to: ", path)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
