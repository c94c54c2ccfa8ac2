// Package configloader resolves the mdcurate configuration: built-in
// defaults, optionally overlaid by the YAML file named with --config, then
// validated.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdcurate/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// ExplicitPath is the config file given with --config. When empty only
	// the defaults are used.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and where it came from.
type LoadResult struct {
	// Config is the validated configuration.
	Config *config.Config

	// LoadedFrom is the file that was read, or empty for defaults only.
	LoadedFrom string
}

// Load resolves the configuration for a single invocation.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	result := &LoadResult{Config: config.NewConfig()}

	if opts.ExplicitPath != "" {
		cfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, err
		}
		result.Config = cfg
		result.LoadedFrom = opts.ExplicitPath
	}

	if err := Validate(result.Config); err != nil {
		if result.LoadedFrom != "" {
			return nil, fmt.Errorf("%s: %w", result.LoadedFrom, err)
		}
		return nil, err
	}

	return result, nil
}

func loadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %s not found", ErrInvalidConfig, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}
