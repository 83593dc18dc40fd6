package pipeline

import (
	"context"
	"os"

	"github.com/teranos/declgen/config"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/typegen"
)

// Check generates into a temporary directory and compares the result with
// the configured output directory.
func Check(ctx context.Context, cfg *config.Config, opts Options) (*typegen.CheckResult, *Report, error) {
	tmp, err := os.MkdirTemp("", "declgen-check-*")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create temporary directory")
	}
	defer os.RemoveAll(tmp)

	existing := cfg.Output.Dir
	if opts.OutputDir != "" {
		existing = opts.OutputDir
	}
	opts.OutputDir = tmp

	report, err := Run(ctx, cfg, opts)
	if err != nil {
		return nil, report, err
	}

	result, err := typegen.CompareDirectories(tmp, existing)
	if err != nil {
		return nil, report, err
	}
	return result, report, nil
}
