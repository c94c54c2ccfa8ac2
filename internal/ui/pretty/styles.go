// Package pretty provides Lipgloss-based styled console output for mdcurate.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles contains the styled renderers for console output.
type Styles struct {
	Title   lipgloss.Style
	Rule    lipgloss.Style
	Heading lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	URL     lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style

	DiffHeader lipgloss.Style
	DiffHunk   lipgloss.Style
	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style
}

// NewStyles creates Styles, colored or plain.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title: plain, Rule: plain, Heading: plain, Success: plain,
			Failure: plain, URL: plain, Label: plain, Dim: plain,
			DiffHeader: plain, DiffHunk: plain, DiffAdd: plain, DiffRemove: plain,
		}
	}

	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		URL:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Label:   lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		DiffHeader: lipgloss.NewStyle().Bold(true),
		DiffHunk:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// IsColorEnabled determines if color should be used for writer.
// In auto mode color needs a TTY and an unset NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTerminal(writer)
	}
}

func isTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
