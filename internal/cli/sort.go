package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcurate/internal/logging"
	"github.com/yaklabco/mdcurate/pkg/diff"
	"github.com/yaklabco/mdcurate/pkg/fsutil"
	"github.com/yaklabco/mdcurate/pkg/sorter"
)

type sortFlags struct {
	check  bool
	diff   bool
	backup bool
}

const sortLongDescription = `Sort the entries of every "## " section alphabetically.

Each run of consecutive "- [Name](url)" lines inside a section is ordered by
name, ignoring case. Headings, prose and blank lines stay where they are, and
text before the first section is never touched. The file is rewritten in place
only when the order changes.

Examples:
  mdcurate sort                 # Sort README.md in place
  mdcurate sort --check         # Exit 1 if README.md is not sorted
  mdcurate sort --diff LIST.md  # Show what would change`

func newSortCommand() *cobra.Command {
	flags := &sortFlags{}

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort list entries within each section",
		Long:  sortLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.check, "check", false, "report whether the file is sorted without writing it")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print the changes as a unified diff without writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a "+fsutil.BackupSuffix+" copy of the original")

	return cmd
}

func runSort(cmd *cobra.Command, args []string, flags *sortFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backup") {
		cfg.Sort.Backup = flags.backup
	}

	path := listFile(args)
	content, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	result := sorter.SortDocument(content)
	logger.Debug("sorted list",
		logging.FieldPath, path,
		logging.FieldRuns, result.Runs,
		logging.FieldChanged, result.RunsReordered,
	)

	out := cmd.OutOrStdout()

	if flags.diff || flags.check {
		if flags.diff {
			_, _ = fmt.Fprint(out, stylesFor(cmd).FormatDiff(diff.Compute(path, content, result.Content)))
		}
		if flags.check {
			if result.Changed() {
				_, _ = fmt.Fprintf(out, "%s is not sorted\n", path)
				return ErrIssuesFound
			}
			_, _ = fmt.Fprintf(out, "%s is sorted\n", path)
		}
		return nil
	}

	if result.Changed() {
		err = fsutil.WithLock(ctx, path, func() error {
			if cfg.Sort.Backup {
				created, err := fsutil.CreateBackup(ctx, snap, content)
				if err != nil {
					return err
				}
				logger.Debug("backup", logging.FieldBackup, fsutil.BackupPath(path), logging.FieldChanged, created)
			}
			_, err := fsutil.ReplaceFile(ctx, snap, result.Content)
			return err
		})
		if err != nil {
			return fmt.Errorf("rewrite %s: %w", path, err)
		}
	}

	_, _ = fmt.Fprintf(out, "Sorted sections in %s\n", path)
	return nil
}
