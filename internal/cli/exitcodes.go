package cli

import "errors"

// Exit codes for mdcurate.
const (
	// ExitSuccess indicates the command completed and found nothing wrong.
	ExitSuccess = 0

	// ExitFailure covers failed links, unsorted or invalid lists and errors.
	ExitFailure = 1
)

// ErrIssuesFound is returned when a command ran to completion but found
// problems: broken links, an unsorted list under --check, or validation
// issues. It only selects the exit code and is not logged.
var ErrIssuesFound = errors.New("issues found")

// ExitCode maps the error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// ShouldLog reports whether err carries information beyond the exit code.
func ShouldLog(err error) bool {
	return err != nil && !errors.Is(err, ErrIssuesFound)
}
