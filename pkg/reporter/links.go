package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yaklabco/mdcurate/pkg/linkcheck"
)

// ReportTimeLayout formats the Generated line of the link report.
const ReportTimeLayout = "2006-01-02 15:04:05"

const (
	reportRule  = 50
	sectionRule = 20
)

// LinkReport is everything the persisted link report contains.
type LinkReport struct {
	Title     string
	RunID     string
	Generated time.Time
	Results   []linkcheck.Result
}

// WriteLinkReport writes the plain-text link validation report.
func WriteLinkReport(w io.Writer, report LinkReport) error {
	summary := linkcheck.Summarize(report.Results)

	var out strings.Builder
	fmt.Fprintf(&out, "%s Link Validation Report\n", report.Title)
	out.WriteString(strings.Repeat("=", reportRule) + "\n\n")
	fmt.Fprintf(&out, "Generated: %s\n", report.Generated.Format(ReportTimeLayout))
	if report.RunID != "" {
		fmt.Fprintf(&out, "Run ID: %s\n", report.RunID)
	}
	fmt.Fprintf(&out, "Total URLs: %d\n", summary.Total)
	fmt.Fprintf(&out, "Success Rate: %.1f%%\n\n", summary.SuccessRate())

	out.WriteString("DETAILED RESULTS:\n")
	out.WriteString(strings.Repeat("-", sectionRule) + "\n")
	for _, result := range report.Results {
		fmt.Fprintf(&out, "%s [%d] %s - %s\n", statusIcon(result), result.StatusCode, result.URL, result.Message)
	}

	if len(summary.Failures) > 0 {
		fmt.Fprintf(&out, "\nFAILED URLs (%d):\n", len(summary.Failures))
		out.WriteString(strings.Repeat("-", sectionRule) + "\n")
		for _, failure := range summary.Failures {
			fmt.Fprintf(&out, "• %s\n", failure.URL)
			fmt.Fprintf(&out, "  Status: %d - %s\n\n", failure.StatusCode, failure.Message)
		}
	}

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("write link report: %w", err)
	}
	return nil
}

func statusIcon(result linkcheck.Result) string {
	if result.Failed() {
		return "❌"
	}
	return "✅"
}
