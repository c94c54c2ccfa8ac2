// Package config defines the configuration types for mdcurate.
// These types are plain data; loading and validation live in internal/configloader.
package config

import (
	"time"

	"github.com/yaklabco/mdcurate/pkg/linkcheck"
	"github.com/yaklabco/mdcurate/pkg/validate"
)

// DefaultListFile is checked when no file argument is given.
const DefaultListFile = "README.md"

// DefaultReportFile is where the link report is written.
const DefaultReportFile = "link_validation_report.txt"

// DefaultReportTitle names the list in the report header and console banner.
const DefaultReportTitle = "Awesome List"

// CategoryConfig maps a report category label to host substrings.
type CategoryConfig struct {
	Label string   `yaml:"label"`
	Hosts []string `yaml:"hosts"`
}

// LinksConfig controls `mdcurate links`.
type LinksConfig struct {
	Timeout    time.Duration    `yaml:"timeout"`
	Delay      time.Duration    `yaml:"delay"`
	UserAgent  string           `yaml:"user_agent"`
	Report     string           `yaml:"report"`
	Title      string           `yaml:"title"`
	Categories []CategoryConfig `yaml:"categories"`
}

// SortConfig controls `mdcurate sort`.
type SortConfig struct {
	Backup bool `yaml:"backup"`
}

// ValidateConfig controls `mdcurate validate`.
type ValidateConfig struct {
	Badge            string   `yaml:"badge"`
	RequiredSections []string `yaml:"required_sections"`
	ExemptSections   []string `yaml:"exempt_sections"`
	MaxNameLength    int      `yaml:"max_name_length"`
	CheckAnchors     bool     `yaml:"check_anchors"`
}

// Config is the complete mdcurate configuration.
type Config struct {
	Links    LinksConfig    `yaml:"links"`
	Sort     SortConfig     `yaml:"sort"`
	Validate ValidateConfig `yaml:"validate"`
}

// NewConfig returns a configuration holding the built-in defaults.
func NewConfig() *Config {
	rules := validate.DefaultRules()

	categories := make([]CategoryConfig, 0, len(linkcheck.DefaultCategoryRules()))
	for _, rule := range linkcheck.DefaultCategoryRules() {
		categories = append(categories, CategoryConfig{Label: rule.Label, Hosts: rule.Hosts})
	}

	return &Config{
		Links: LinksConfig{
			Timeout:    linkcheck.DefaultTimeout,
			Delay:      linkcheck.DefaultDelay,
			UserAgent:  linkcheck.DefaultUserAgent,
			Report:     DefaultReportFile,
			Title:      DefaultReportTitle,
			Categories: categories,
		},
		Validate: ValidateConfig{
			Badge:            rules.Badge,
			RequiredSections: rules.RequiredSections,
			ExemptSections:   rules.ExemptSections,
			MaxNameLength:    rules.MaxNameLength,
			CheckAnchors:     rules.CheckAnchors,
		},
	}
}

// CategoryRules converts the configured categories for the link checker.
func (c LinksConfig) CategoryRules() []linkcheck.CategoryRule {
	rules := make([]linkcheck.CategoryRule, 0, len(c.Categories))
	for _, category := range c.Categories {
		rules = append(rules, linkcheck.CategoryRule{Label: category.Label, Hosts: category.Hosts})
	}
	return rules
}

// Rules converts the validate section into validator rules.
func (c ValidateConfig) Rules() validate.Rules {
	return validate.Rules{
		Badge:            c.Badge,
		RequiredSections: c.RequiredSections,
		ExemptSections:   c.ExemptSections,
		MaxNameLength:    c.MaxNameLength,
		CheckAnchors:     c.CheckAnchors,
	}
}
