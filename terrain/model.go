package terrain

import (
	"fmt"

	"github.com/katalvlaran/tacmove/mover"
)

// flightCost is what a flying mover pays for any tile.
var flightCost = Cost{Move: 1, Weight: 1}

// Model resolves Cost(terrain, mover). It is a fixed array lookup plus a
// couple of bit tests on the mover.
type Model struct {
	costs [typeCount]Cost
}

// NewModel builds a Model from t, filling missing terrains from
// DefaultTable. Returns ErrBadCost (wrapped with the terrain name) for an
// unusable entry, or ErrUnknownType for a key outside the declared set.
func NewModel(t Table) (*Model, error) {
	m := &Model{}
	for typ, c := range DefaultTable() {
		m.costs[typ] = c
	}
	for typ, c := range t {
		if !typ.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(typ))
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		m.costs[typ] = c
	}

	return m, nil
}

// DefaultModel returns a Model over DefaultTable.
func DefaultModel() *Model {
	m, err := NewModel(nil)
	if err != nil {
		// DefaultTable is a constant; failure here is a build defect.
		panic(err)
	}
	return m
}

// Base returns the table entry for t, ignoring mover traits.
// Panics on a terrain outside the declared set.
func (m *Model) Base(t Type) Cost {
	if !t.Valid() {
		panic(fmt.Sprintf("terrain: cost lookup for unknown %s", t))
	}
	return m.costs[t]
}

// Cost returns the budget cost and search weight for mv entering a tile
// of terrain t. Panics on a terrain outside the declared set.
func (m *Model) Cost(t Type, mv *mover.Mover) (move int, weight float64) {
	c := m.Resolve(t, mv)
	return c.Move, c.Weight
}

// Resolve is Cost returning the Cost struct.
func (m *Model) Resolve(t Type, mv *mover.Mover) Cost {
	base := m.Base(t)
	if mv == nil {
		return base
	}
	if mv.Flying() {
		return flightCost
	}
	if elem, cond, ok := t.Hazard(); ok && mv.Shrugs(elem, cond) {
		return m.costs[Open]
	}
	return base
}

// Table returns a copy of the effective table.
func (m *Model) Table() Table {
	out := make(Table, typeCount)
	for i, c := range m.costs {
		out[Type(i)] = c
	}
	return out
}
