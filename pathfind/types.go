package pathfind

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tacmove/config"
	"github.com/katalvlaran/tacmove/logger"
	"github.com/katalvlaran/tacmove/terrain"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilBattlefield indicates a nil core.Battlefield.
	ErrNilBattlefield = errors.New("pathfind: battlefield is nil")

	// ErrNilMover indicates a nil mover.
	ErrNilMover = errors.New("pathfind: mover is nil")

	// ErrNegativeBudget indicates a movement budget below zero.
	ErrNegativeBudget = errors.New("pathfind: budget must be non-negative")

	// ErrOriginOutOfBounds indicates an origin outside the grid.
	ErrOriginOutOfBounds = errors.New("pathfind: origin out of bounds")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Options configures FindPath.
type Options struct {
	// Model resolves terrain costs for the mover.
	Model *terrain.Model

	// UnreachablePenalty scales the Manhattan heuristic on tiles the flow
	// field could not reach. Must be > 0.
	UnreachablePenalty float64

	// MaxExpansions caps the number of labels the search pops before it
	// gives up and falls back. 0 means no cap.
	MaxExpansions int

	// Logger receives Debug traces of each decision.
	Logger logrus.FieldLogger

	// err records the first invalid option.
	err error
}

// Option represents a functional option for FindPath.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns:
//   - Model:              terrain.DefaultModel()
//   - UnreachablePenalty: config.DefaultUnreachablePenalty
//   - MaxExpansions:      0 (unbounded)
//   - Logger:             logger.Component("pathfind")
func DefaultOptions() Options {
	return Options{
		Model:              terrain.DefaultModel(),
		UnreachablePenalty: config.DefaultUnreachablePenalty,
		Logger:             logger.Component("pathfind"),
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

// WithUnreachablePenalty sets the Manhattan scale for unreachable tiles.
func WithUnreachablePenalty(p float64) Option {
	return func(o *Options) {
		if !(p > 0) {
			o.fail(fmt.Errorf("%w: UnreachablePenalty must be > 0 (%g)", ErrOptionViolation, p))
			return
		}
		o.UnreachablePenalty = p
	}
}

// WithMaxExpansions bounds search effort. A capped search that stops before
// reaching the destination goes straight to the fallback tiers.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxExpansions must be >= 0 (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxExpansions = n
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

// WithConfig applies the cost table and penalty from a loaded config.
func WithConfig(cfg config.Config) Option {
	return func(o *Options) {
		m, err := cfg.Model()
		if err != nil {
			o.fail(fmt.Errorf("%w: %v", ErrOptionViolation, err))
			return
		}
		o.Model = m
		if cfg.UnreachablePenalty > 0 {
			o.UnreachablePenalty = cfg.UnreachablePenalty
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
