// Package pipeline wires the generator stages: load the feed, apply the
// corrections, build the IR, render, clean up and write. Every stage before
// writing works in memory, so a failure anywhere leaves the output directory
// untouched.
package pipeline

import (
	"context"
	"time"

	"github.com/teranos/declgen/config"
	"github.com/teranos/declgen/correction"
	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/ir"
	"github.com/teranos/declgen/logger"
	"github.com/teranos/declgen/typegen"
	"github.com/teranos/declgen/typegen/cleanup"
	"github.com/teranos/declgen/typegen/kotlin"
	"go.uber.org/zap"
)

// Stage names reported in logs and in the Report.
const (
	StageLoad    = "load"
	StageCorrect = "correct"
	StageIR      = "ir"
	StageEmit    = "emit"
	StageCleanup = "cleanup"
	StageWrite   = "write"
)

// Options adjust one run beyond the configuration.
type Options struct {
	// Passes replaces correction.DefaultPasses when non-nil.
	Passes []correction.Pass
	// OutputDir replaces cfg.Output.Dir when set.
	OutputDir string
}

// StageTiming records how long one stage took.
type StageTiming struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration_ns"`
}

// Report summarizes a run.
type Report struct {
	FeedVersion string                  `json:"feed_version"`
	Types       int                     `json:"types"`
	Signatures  int                     `json:"signatures"`
	Files       int                     `json:"files"`
	OutputDir   string                  `json:"output_dir,omitempty"`
	Passes      []correction.PassResult `json:"passes"`
	Stages      []StageTiming           `json:"stages"`
}

// Duration is the total time of all stages.
func (r *Report) Duration() time.Duration {
	var total time.Duration
	for _, s := range r.Stages {
		total += s.Duration
	}
	return total
}

// AppliedPasses counts passes that were not skipped.
func (r *Report) AppliedPasses() int {
	n := 0
	for _, p := range r.Passes {
		if !p.Skipped {
			n++
		}
	}
	return n
}

type runner struct {
	cfg    *config.Config
	opts   Options
	report *Report
	log    *zap.SugaredLogger
}

func (r *runner) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	r.report.Stages = append(r.report.Stages, StageTiming{Name: name, Duration: elapsed})
	if err != nil {
		return errors.Wrapf(err, "stage %s", name)
	}
	r.log.Debugw("Stage finished", logger.FieldStage, name, logger.FieldDurationMS, elapsed.Milliseconds())
	return nil
}

// Generate runs every in-memory stage and returns the files to write.
func Generate(cfg *config.Config, opts Options) ([]typegen.File, *Report, error) {
	r := newRunner(cfg, opts)
	files, err := r.generate()
	return files, r.report, err
}

func newRunner(cfg *config.Config, opts Options) *runner {
	return &runner{
		cfg:    cfg,
		opts:   opts,
		report: &Report{},
		log:    logger.ComponentLogger("pipeline"),
	}
}

func (r *runner) generate() ([]typegen.File, error) {
	cfg := r.cfg

	var g *graph.Graph
	err := r.stage(StageLoad, func() error {
		var err error
		g, err = graph.LoadFile(cfg.Feed.Path, graph.LoadOptions{
			NamespaceAliases: aliases(cfg.Feed.NamespaceAliases),
			SchemaConstraint: cfg.Feed.SchemaConstraint,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	r.report.FeedVersion = g.Version()

	err = r.stage(StageCorrect, func() error {
		passes := r.opts.Passes
		if passes == nil {
			passes = correction.DefaultPasses()
		}
		results, err := correction.NewEngine(passes).Run(g, correction.Options{
			Mode:          correction.Mode(cfg.Correction.Mode),
			StrictNumbers: cfg.Correction.StrictNumbers,
		})
		r.report.Passes = results
		return err
	})
	if err != nil {
		return nil, err
	}

	var model *ir.Model
	err = r.stage(StageIR, func() error {
		var err error
		model, err = ir.Build(g, ir.Options{
			PrimitiveTypes: cfg.Generator.PrimitiveTypes,
			MarkerTypes:    cfg.Generator.MarkerTypes,
			CacheSize:      cfg.Generator.CacheSize,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	r.report.Types = len(model.Types)
	r.report.Signatures = len(model.FunctionSignatures)

	var files []typegen.File
	err = r.stage(StageEmit, func() error {
		descriptions, err := typegen.LoadDescriptions(cfg.Generator.Descriptions)
		if err != nil {
			return err
		}
		files, err = kotlin.New(kotlin.Options{
			Module:       cfg.Generator.Module,
			Descriptions: descriptions,
		}).Generate(model)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !cfg.Output.Raw {
		err = r.stage(StageCleanup, func() error {
			files = cleanup.New(cfg.Generator.RootNamespace, cfg.Generator.StandardImports).CleanAll(files)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	r.report.Files = len(files)
	return files, nil
}

// Run generates and writes the declarations.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	r := newRunner(cfg, opts)
	files, err := r.generate()
	if err != nil {
		return r.report, err
	}

	dir := cfg.Output.Dir
	if opts.OutputDir != "" {
		dir = opts.OutputDir
	}
	r.report.OutputDir = dir

	err = r.stage(StageWrite, func() error {
		w := &typegen.Writer{Dir: dir, Clean: cfg.Output.Clean, Workers: cfg.Output.Workers}
		return w.Write(ctx, files)
	})
	if err != nil {
		return r.report, err
	}

	r.log.Infow("Declarations generated",
		logger.FieldTypes, r.report.Types,
		logger.FieldFiles, r.report.Files,
		logger.FieldPath, dir,
		logger.FieldDurationMS, r.report.Duration().Milliseconds())
	return r.report, nil
}

func aliases(in []config.NamespaceAlias) []graph.Alias {
	out := make([]graph.Alias, len(in))
	for i, a := range in {
		out[i] = graph.Alias{From: a.From, To: a.To}
	}
	return out
}
