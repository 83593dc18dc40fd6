package typegen

import (
	"context"
	"os"
	"path/filepath"

	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/logger"
	"golang.org/x/sync/errgroup"
)

const (
	dirPermissions  = 0755
	filePermissions = 0644
)

// Writer materializes generated files under Dir.
type Writer struct {
	Dir string
	// Clean removes Dir before writing.
	Clean bool
	// Workers bounds concurrent file writes; values below one mean one.
	Workers int
}

// Write stores every file. Cancelling ctx stops scheduling new writes; the
// first failure cancels the rest and is returned.
func (w *Writer) Write(ctx context.Context, files []File) error {
	log := logger.ComponentLogger("typegen.writer")

	if w.Dir == "" {
		return errors.New("output directory is empty")
	}
	if w.Clean {
		if err := os.RemoveAll(w.Dir); err != nil {
			return errors.Wrapf(err, "failed to clean %s", w.Dir)
		}
	}
	if err := os.MkdirAll(w.Dir, dirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", w.Dir)
	}

	workers := w.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range files {
		f := f
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return w.writeFile(f)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "write cancelled")
	}

	log.Debugw("Files written", logger.FieldFiles, len(files), logger.FieldPath, w.Dir)
	return nil
}

func (w *Writer) writeFile(f File) error {
	path := filepath.Join(w.Dir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", f.Path)
	}
	if err := os.WriteFile(path, []byte(f.Content), filePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", f.Path)
	}
	return nil
}
