// Package correction patches the type graph before IR construction.
//
// Corrections run as an ordered list of passes. Each pass declares the graph
// shapes it requires and the shapes it provides; the engine refuses to run a
// list where a requirement is not provided by an earlier pass. A failing pass
// aborts the run.
package correction

import (
	"time"

	"github.com/teranos/declgen/errors"
	"github.com/teranos/declgen/graph"
	"github.com/teranos/declgen/logger"
	"go.uber.org/zap"
)

// Mode selects which table entries apply.
type Mode string

const (
	// ModeNormal targets the released feed.
	ModeNormal Mode = "normal"
	// ModeProgressive targets the preview feed, where some upstream defects
	// are already fixed.
	ModeProgressive Mode = "progressive"
)

// Allows reports whether an entry restricted to entryMode applies. An empty
// entry mode applies everywhere.
func (m Mode) Allows(entryMode Mode) bool {
	return entryMode == "" || entryMode == m
}

// Shape names a structural post-condition a pass establishes.
type Shape string

const (
	ShapeFieldsNormalized Shape = "fields-normalized"
	ShapeSystemPruned     Shape = "system-pruned"
	ShapeParametersPruned Shape = "parameters-pruned"
	ShapeGenericsRepaired Shape = "generics-repaired"
	ShapeTypesReplaced    Shape = "types-replaced"
	ShapeMembersAdded     Shape = "members-added"
	ShapeNumbersRefined   Shape = "numbers-refined"
)

// Context is handed to every pass.
type Context struct {
	Graph         *graph.Graph
	Mode          Mode
	StrictNumbers bool
	Log           *zap.SugaredLogger
}

// Pass is one self-contained correction step.
type Pass struct {
	Name     string
	Requires []Shape
	Provides []Shape
	// OnlyIn restricts the pass to one mode; empty runs in every mode.
	OnlyIn Mode
	// Check, when set, verifies the graph before Apply runs.
	Check func(*graph.Graph) error
	Apply func(*Context) error
}

// PassResult records one executed pass.
type PassResult struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration_ns"`
	Skipped  bool          `json:"skipped,omitempty"`
}

// Options configure a run.
type Options struct {
	Mode          Mode
	StrictNumbers bool
}

// Engine runs an ordered pass list.
type Engine struct {
	passes []Pass
	log    *zap.SugaredLogger
}

// NewEngine creates an engine for the given ordered passes.
func NewEngine(passes []Pass) *Engine {
	return &Engine{
		passes: passes,
		log:    logger.ComponentLogger("correction.engine"),
	}
}

// Passes returns the configured order.
func (e *Engine) Passes() []Pass {
	return e.passes
}

// Validate checks the static order: names are unique and every required
// shape is provided by an earlier pass.
func (e *Engine) Validate() error {
	provided := make(map[Shape]string)
	seen := make(map[string]bool)
	for _, p := range e.passes {
		if p.Name == "" || p.Apply == nil {
			return errors.AssertionFailedf("pass %q is incomplete", p.Name)
		}
		if seen[p.Name] {
			return errors.NewInvariantViolation(p.Name, "pass %s is listed twice", p.Name)
		}
		seen[p.Name] = true
		for _, req := range p.Requires {
			if _, ok := provided[req]; !ok {
				return errors.WithHint(
					errors.NewInvariantViolation(p.Name, "pass %s requires shape %s, which no earlier pass provides", p.Name, req),
					"move the pass after the one establishing the shape")
			}
		}
		for _, prov := range p.Provides {
			provided[prov] = p.Name
		}
	}
	return nil
}

// Run validates the order and applies every pass to g in place.
func (e *Engine) Run(g *graph.Graph, opts Options) ([]PassResult, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if opts.Mode == "" {
		opts.Mode = ModeNormal
	}

	results := make([]PassResult, 0, len(e.passes))
	started := time.Now()
	for _, p := range e.passes {
		if !opts.Mode.Allows(p.OnlyIn) {
			e.log.Debugw("Pass skipped", logger.FieldPass, p.Name, logger.FieldMode, string(opts.Mode))
			results = append(results, PassResult{Name: p.Name, Skipped: true})
			continue
		}

		passStart := time.Now()
		if p.Check != nil {
			if err := p.Check(g); err != nil {
				return results, errors.Wrapf(err, "precondition of pass %s", p.Name)
			}
		}
		ctx := &Context{
			Graph:         g,
			Mode:          opts.Mode,
			StrictNumbers: opts.StrictNumbers,
			Log:           logger.ChildLogger(e.log, logger.FieldPass, p.Name),
		}
		if err := p.Apply(ctx); err != nil {
			return results, errors.Wrapf(err, "pass %s", p.Name)
		}

		elapsed := time.Since(passStart)
		results = append(results, PassResult{Name: p.Name, Duration: elapsed})
		e.log.Debugw("Pass applied",
			logger.FieldPass, p.Name,
			logger.FieldDurationMS, elapsed.Milliseconds())
	}

	e.log.Infow("Corrections applied",
		logger.FieldCount, len(results),
		logger.FieldDurationMS, time.Since(started).Milliseconds())
	return results, nil
}
