// Package cli provides the Cobra command structure for mdcurate.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcurate/internal/configloader"
	"github.com/yaklabco/mdcurate/internal/logging"
	"github.com/yaklabco/mdcurate/internal/ui/pretty"
	"github.com/yaklabco/mdcurate/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdcurate command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdcurate",
		Short: "Maintenance tools for curated awesome lists",
		Long: `mdcurate keeps a curated Markdown "awesome list" healthy.

It checks every external link in the list, sorts the entries of each section
alphabetically and validates the list against the usual awesome-list checklist:
badge, table of contents, duplicates, HTTPS and ordering.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if debug {
				logging.SetLevel("debug")
			}
			switch color {
			case pretty.ColorAuto, pretty.ColorAlways, pretty.ColorNever:
				return nil
			default:
				return fmt.Errorf("invalid --color %q; valid values: auto, always, never", color)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", pretty.ColorAuto,
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLinksCommand())
	rootCmd.AddCommand(newSortCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the configuration named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if result.LoadedFrom != "" {
		logging.FromContext(commandContext(cmd)).Debug("loaded configuration", logging.FieldConfig, result.LoadedFrom)
	}

	return result.Config, nil
}

// stylesFor returns console styles for the command's stdout.
func stylesFor(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = pretty.ColorAuto
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// listFile returns the list path argument, defaulting to README.md.
func listFile(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultListFile
}
