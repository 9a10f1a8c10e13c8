package reach

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/logger"
	"github.com/katalvlaran/tacmove/terrain"
)

// Sentinel errors returned by From.
var (
	// ErrNilBattlefield is returned if a nil battlefield is passed.
	ErrNilBattlefield = errors.New("reach: battlefield is nil")

	// ErrNilMover is returned if a nil mover is passed.
	ErrNilMover = errors.New("reach: mover is nil")

	// ErrNegativeBudget is returned for a budget below zero.
	ErrNegativeBudget = errors.New("reach: budget must be non-negative")

	// ErrOriginOutOfBounds is returned when the origin is off the grid.
	ErrOriginOutOfBounds = errors.New("reach: origin out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Destination is one reachable tile with the route and resources spent.
type Destination struct {
	Tile            core.Point
	Path            []core.Step // origin exclusive, Tile inclusive
	TotalCost       int
	TotalWeight     float64
	BudgetRemaining int
}

// AsPath returns the route as an exact core.Path.
func (d Destination) AsPath() *core.Path {
	return &core.Path{Steps: d.Path, Cost: d.TotalCost, Weight: d.TotalWeight}
}

// Option configures From via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for From.
type Options struct {
	// Model resolves terrain costs for the mover.
	Model *terrain.Model

	// MaxSteps, if > 0, stops the walk after that many steps.
	// 0 disables the limit. Dominance still compares budget only, so a
	// cheaper but longer route can shadow a shorter one under the limit.
	MaxSteps int

	// FilterStep can veto a step from one tile to a neighbour by
	// returning false. It runs after the footprint and budget checks.
	FilterStep func(from, to core.Point) bool

	// OnVisit is called for every admitted arrival, including those later
	// superseded by a better one.
	OnVisit func(Destination)

	// Logger receives a Debug summary of each walk.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns:
//   - terrain.DefaultModel()
//   - no step limit (MaxSteps == 0)
//   - no filtering
//   - a no-op OnVisit
//   - logger.Component("reach")
func DefaultOptions() Options {
	return Options{
		Model:      terrain.DefaultModel(),
		FilterStep: func(_, _ core.Point) bool { return true },
		OnVisit:    func(Destination) {},
		Logger:     logger.Component("reach"),
	}
}

// WithCostModel sets the terrain cost model.
func WithCostModel(m *terrain.Model) Option {
	return func(o *Options) {
		if m == nil {
			o.fail(fmt.Errorf("%w: nil cost model", ErrOptionViolation))
			return
		}
		o.Model = m
	}
}

// WithMaxSteps limits path length in tiles.
//
//	n > 0: at most n steps
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxSteps = n
	}
}

// WithFilterStep skips steps when fn returns false.
func WithFilterStep(fn func(from, to core.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterStep = fn
		}
	}
}

// WithOnVisit registers a callback run on every admitted arrival.
func WithOnVisit(fn func(Destination)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
