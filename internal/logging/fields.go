package logging

// Field names for structured logging.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldConfig  = "config"
	FieldCommand = "command"

	// Link checking.
	FieldURL      = "url"
	FieldStatus   = "status"
	FieldMethod   = "method"
	FieldCategory = "category"
	FieldElapsed  = "elapsed"
	FieldRunID    = "run_id"
	FieldURLs     = "urls"
	FieldFailed   = "failed"
	FieldReport   = "report"

	// Sorting and validation.
	FieldSections = "sections"
	FieldRuns     = "runs"
	FieldChanged  = "changed"
	FieldBackup   = "backup"
	FieldLinks    = "links"
	FieldIssues   = "issues"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
