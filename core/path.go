package core

import (
	"strings"

	"github.com/katalvlaran/tacmove/terrain"
)

// Step is one tile entered along a path and the terrain crossed there.
type Step struct {
	Point
	Terrain terrain.Type
}

// Path is a planner result: tiles from the origin (exclusive) to the
// reached tile (inclusive), with resource totals and fallback flags.
//
// Partial is set when the reached tile is not the requested destination.
// Emergency is set when the path is a single forced step taken because the
// search produced nothing usable.
type Path struct {
	Steps     []Step
	Cost      int     // sum of movement costs; never exceeds the budget
	Weight    float64 // sum of search weights
	Partial   bool
	Emergency bool
}

// Len returns the number of steps.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Steps)
}

// End returns the last tile of the path, or origin when the path is empty.
func (p *Path) End(origin Point) Point {
	if p.Len() == 0 {
		return origin
	}
	return p.Steps[len(p.Steps)-1].Point
}

// Tiles returns the step coordinates in order.
func (p *Path) Tiles() []Point {
	out := make([]Point, p.Len())
	for i := range out {
		out[i] = p.Steps[i].Point
	}
	return out
}

// String renders the steps as "(x,y)->(x,y)".
func (p *Path) String() string {
	if p.Len() == 0 {
		return "[]"
	}
	var sb strings.Builder
	for i, s := range p.Steps {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(s.Point.String())
	}
	return sb.String()
}
