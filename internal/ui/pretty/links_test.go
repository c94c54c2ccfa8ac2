package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcurate/internal/ui/pretty"
	"github.com/yaklabco/mdcurate/pkg/linkcheck"
)

func newConsole(buf *bytes.Buffer) *pretty.LinkConsole {
	return pretty.NewLinkConsole(buf, pretty.NewStyles(false), 0)
}

func TestLinkConsole_Banner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newConsole(&buf).Banner("Awesome Parcels", 3)

	assert.Equal(t, "🔗 Awesome Parcels Link Validator\n"+
		strings.Repeat("=", 50)+"\n"+
		"Found 3 unique URLs to validate\n"+
		"\n"+
		"🔍 Validating URLs...\n"+
		strings.Repeat("-", 30)+"\n", buf.String())
}

func TestLinkConsole_Progress(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console := newConsole(&buf)

	long := "https://example.com/" + strings.Repeat("a", 60)

	console.Progress(linkcheck.Event{Index: 1, Total: 2, URL: long})
	console.Progress(linkcheck.Event{Index: 1, Total: 2, URL: long, Result: &linkcheck.Result{StatusCode: 200, Message: "OK"}})
	console.Progress(linkcheck.Event{Index: 2, Total: 2, URL: "https://x.example"})
	console.Progress(linkcheck.Event{Index: 2, Total: 2, URL: "https://x.example", Result: &linkcheck.Result{StatusCode: 0, Message: "Timeout"}})

	assert.Equal(t, "[1/2] Checking: "+long[:60]+"...\n"+
		"    ✅ 200 - OK\n"+
		"[2/2] Checking: https://x.example\n"+
		"    ❌ 0 - Timeout\n", buf.String())
}

func TestLinkConsole_SummaryWithFailures(t *testing.T) {
	t.Parallel()

	summary := linkcheck.Summarize([]linkcheck.Result{
		{URL: "https://github.com/a", StatusCode: 200, Message: "OK", Category: "GitHub", Domain: "github.com"},
		{URL: "https://gone.example", StatusCode: 404, Message: "Error", Category: "Other", Domain: "gone.example"},
	})

	var buf bytes.Buffer
	newConsole(&buf).Summary(summary)

	out := buf.String()
	assert.Contains(t, out, "📊 VALIDATION SUMMARY\n")
	assert.Contains(t, out, "Total URLs checked: 2\n")
	assert.Contains(t, out, "Successful: 1 (50.0%)\n")
	assert.Contains(t, out, "Failed: 1 (50.0%)\n")
	assert.Contains(t, out, "📂 URLs by Category:\n  GitHub: 1 URLs (1 domain)\n  Other: 1 URLs (1 domain)\n")
	assert.Contains(t, out, "❌ FAILED URLs (1):\n"+strings.Repeat("-", 30)+"\n• https://gone.example\n  Status: 404 - Error\n\n")
	assert.NotContains(t, out, "🎉")
}

func TestLinkConsole_SummaryAllPassed(t *testing.T) {
	t.Parallel()

	summary := linkcheck.Summarize([]linkcheck.Result{
		{URL: "https://a.example", StatusCode: 200, Message: "OK", Category: "Other", Domain: "a.example"},
		{URL: "https://b.example", StatusCode: 200, Message: "OK", Category: "Other", Domain: "b.example"},
	})

	var buf bytes.Buffer
	console := newConsole(&buf)
	console.Summary(summary)
	console.ReportSaved("report.txt")

	out := buf.String()
	assert.Contains(t, out, "  Other: 2 URLs (2 domains)\n")
	assert.Contains(t, out, "\n🎉 All URLs are working correctly!\n")
	assert.True(t, strings.HasSuffix(out, "\n📄 Detailed report saved to: report.txt\n"))
}
