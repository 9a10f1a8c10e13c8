package flowfield

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/logger"
	"github.com/katalvlaran/tacmove/terrain"
)

// Sentinel errors returned by Build.
var (
	// ErrNilBattlefield indicates a nil core.Battlefield.
	ErrNilBattlefield = errors.New("flowfield: battlefield is nil")

	// ErrNilMover indicates a nil mover.
	ErrNilMover = errors.New("flowfield: mover is nil")

	// ErrDestinationOutOfBounds indicates a destination outside the grid.
	ErrDestinationOutOfBounds = errors.New("flowfield: destination out of bounds")
)

// Options configures Build.
//
// Model     – terrain cost model; defaults to terrain.DefaultModel().
// Occupancy – snapshot to reuse; nil means Build takes its own.
// Logger    – debug sink; defaults to logger.Component("flowfield").
type Options struct {
	Model     *terrain.Model
	Occupancy *core.Occupancy
	Logger    logrus.FieldLogger
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithCostModel sets the terrain cost model. A nil model is ignored.
func WithCostModel(m *terrain.Model) Option {
	return func(o *Options) {
		if m != nil {
			o.Model = m
		}
	}
}

// WithOccupancy reuses an occupancy snapshot taken by the caller, so the
// field and a subsequent search agree on which tiles are blocked.
func WithOccupancy(occ *core.Occupancy) Option {
	return func(o *Options) { o.Occupancy = occ }
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the stock options.
func DefaultOptions() Options {
	return Options{
		Model:  terrain.DefaultModel(),
		Logger: logger.Component("flowfield"),
	}
}
