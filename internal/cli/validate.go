package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcurate/internal/logging"
	"github.com/yaklabco/mdcurate/pkg/fsutil"
	"github.com/yaklabco/mdcurate/pkg/reporter"
	"github.com/yaklabco/mdcurate/pkg/validate"
)

type validateFlags struct {
	format       string
	checkAnchors bool
}

const validateLongDescription = `Validate a curated list against the awesome-list checklist.

Checks for the awesome badge and required sections, URLs or names used by more
than one entry, plain HTTP links, entries out of alphabetical order and entry
names that are too long. Every issue is reported; the run never stops early.

Exits 1 when any issue is found.

Examples:
  mdcurate validate                   # Validate README.md
  mdcurate validate --format json     # Machine-readable output
  mdcurate validate --check-anchors   # Also check in-page #anchor links`

func newValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a list against the awesome-list checklist",
		Long:  validateLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText), "output format: text, json")
	cmd.Flags().BoolVar(&flags.checkAnchors, "check-anchors", false, "report #anchor links with no matching heading")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, flags *validateFlags) error {
	ctx := commandContext(cmd)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("check-anchors") {
		cfg.Validate.CheckAnchors = flags.checkAnchors
	}

	path := listFile(args)
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	report := validate.New(cfg.Validate.Rules()).Validate(path, content)
	logging.FromContext(ctx).Debug("validated list",
		logging.FieldPath, path,
		logging.FieldLinks, report.Links,
		logging.FieldIssues, len(report.Issues),
	)

	if err := reporter.WriteValidation(cmd.OutOrStdout(), format, report); err != nil {
		return err
	}

	if !report.Passed() {
		return ErrIssuesFound
	}
	return nil
}
