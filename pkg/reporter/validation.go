// Package reporter renders mdcurate results: the validate checklist as text
// or JSON, and the persisted link validation report.
package reporter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/mdcurate/pkg/validate"
)

const bufWriterSize = 32 * 1024

// ValidationJSON is the JSON shape of a validate run.
type ValidationJSON struct {
	File   string   `json:"file"`
	Links  int      `json:"links"`
	Passed bool     `json:"passed"`
	Issues []string `json:"issues"`
}

// WriteValidation writes report to w in the given format.
func WriteValidation(w io.Writer, format Format, report *validate.Report) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	switch format {
	case FormatJSON:
		return writeValidationJSON(bw, report)
	case FormatText:
		return writeValidationText(bw, report)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeValidationText(w io.Writer, report *validate.Report) error {
	var lines []string
	lines = append(lines,
		fmt.Sprintf("Validating %s...", report.File),
		fmt.Sprintf("Found %d links", report.Links),
	)

	if report.Passed() {
		lines = append(lines, "✅ All checks passed!")
	} else {
		lines = append(lines, "", "Issues found:")
		for _, issue := range report.Issues {
			lines = append(lines, "  - "+string(issue))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func writeValidationJSON(w io.Writer, report *validate.Report) error {
	out := ValidationJSON{
		File:   report.File,
		Links:  report.Links,
		Passed: report.Passed(),
		Issues: make([]string, 0, len(report.Issues)),
	}
	for _, issue := range report.Issues {
		out.Issues = append(out.Issues, string(issue))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
