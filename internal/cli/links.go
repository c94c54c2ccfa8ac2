package cli

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcurate/internal/logging"
	"github.com/yaklabco/mdcurate/internal/ui/pretty"
	"github.com/yaklabco/mdcurate/pkg/config"
	"github.com/yaklabco/mdcurate/pkg/fsutil"
	"github.com/yaklabco/mdcurate/pkg/linkcheck"
	"github.com/yaklabco/mdcurate/pkg/mdlist"
	"github.com/yaklabco/mdcurate/pkg/reporter"
)

type linksFlags struct {
	report  string
	title   string
	timeout time.Duration
	delay   time.Duration
}

const linksLongDescription = `Check every external link in a curated list.

Each unique URL is requested with HEAD, retried once with GET when the server
answers with an error status, and classified as OK, Error, Timeout, Connection
Error or Request Error. Requests are spaced out by --delay. A summary is printed
and a plain-text report is written to --report.

Exits 1 when any link fails.

Examples:
  mdcurate links                      # Check README.md
  mdcurate links docs/LIST.md         # Check another list
  mdcurate links --delay 0 --timeout 5s`

func newLinksCommand() *cobra.Command {
	flags := &linksFlags{}

	cmd := &cobra.Command{
		Use:   "links [file]",
		Short: "Validate the external links in a list",
		Long:  linksLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.report, "report", config.DefaultReportFile, "path of the report file")
	cmd.Flags().StringVar(&flags.title, "title", config.DefaultReportTitle, "list name used in the banner and report")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", linkcheck.DefaultTimeout, "per-request timeout")
	cmd.Flags().DurationVar(&flags.delay, "delay", linkcheck.DefaultDelay, "minimum spacing between checks")

	return cmd
}

func applyLinksFlags(cmd *cobra.Command, cfg *config.LinksConfig, flags *linksFlags) error {
	if cmd.Flags().Changed("report") {
		cfg.Report = flags.report
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = flags.title
	}
	if cmd.Flags().Changed("timeout") {
		if flags.timeout <= 0 {
			return fmt.Errorf("--timeout must be positive, got %s", flags.timeout)
		}
		cfg.Timeout = flags.timeout
	}
	if cmd.Flags().Changed("delay") {
		if flags.delay < 0 {
			return fmt.Errorf("--delay must not be negative, got %s", flags.delay)
		}
		cfg.Delay = flags.delay
	}
	return nil
}

func runLinks(cmd *cobra.Command, args []string, flags *linksFlags) error {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyLinksFlags(cmd, &cfg.Links, flags); err != nil {
		return err
	}

	path := listFile(args)
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx, logger := logging.WithFields(ctx, logging.FieldRunID, runID)

	urls := mdlist.ExtractURLs(content)
	logger.Debug("extracted links", logging.FieldPath, path, logging.FieldURLs, len(urls))

	out := cmd.OutOrStdout()
	console := pretty.NewLinkConsole(out, stylesFor(cmd), pretty.URLWidth(out))
	console.Banner(cfg.Links.Title, len(urls))

	checker := linkcheck.New(linkcheck.Options{
		Timeout:    cfg.Links.Timeout,
		Delay:      cfg.Links.Delay,
		UserAgent:  cfg.Links.UserAgent,
		Categories: cfg.Links.CategoryRules(),
	})

	results, err := checker.CheckAll(ctx, urls, func(event linkcheck.Event) {
		console.Progress(event)
		if event.Result != nil {
			logger.Debug("checked link",
				logging.FieldURL, event.URL,
				logging.FieldStatus, event.Result.StatusCode,
				logging.FieldMethod, event.Result.Method,
				logging.FieldCategory, event.Result.Category,
				logging.FieldElapsed, event.Result.Elapsed,
			)
		}
	})
	if err != nil {
		return fmt.Errorf("check links: %w", err)
	}

	summary := linkcheck.Summarize(results)
	console.Summary(summary)

	var report bytes.Buffer
	if err := reporter.WriteLinkReport(&report, reporter.LinkReport{
		Title:     cfg.Links.Title,
		RunID:     runID,
		Generated: time.Now(),
		Results:   results,
	}); err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, cfg.Links.Report, report.Bytes(), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	console.ReportSaved(cfg.Links.Report)

	logger.Debug("link run finished",
		logging.FieldURLs, summary.Total,
		logging.FieldFailed, summary.Failed,
		logging.FieldReport, cfg.Links.Report,
	)

	if !summary.Passed() {
		return ErrIssuesFound
	}
	return nil
}
