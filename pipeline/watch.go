package pipeline

import (
	"context"

	"github.com/teranos/declgen/config"
	"github.com/teranos/declgen/logger"
)

// RunCallback receives the outcome of every watched run.
type RunCallback func(report *Report, err error)

// Watch runs the pipeline once, then again whenever the feed or one of the
// extra paths changes, until ctx is done. Failed runs are reported through
// onRun and never stop the loop.
func Watch(ctx context.Context, cfg *config.Config, opts Options, onRun RunCallback, extra ...string) error {
	run := func() {
		report, err := Run(ctx, cfg, opts)
		onRun(report, err)
	}
	run()

	paths := append([]string{cfg.Feed.Path}, extra...)
	watcher, err := config.NewFileWatcher(func(path string) error {
		logger.Infow("Regenerating", logger.FieldFile, path)
		run()
		return nil
	}, paths...)
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
