package terrain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tacmove/mover"
)

// Sentinel errors for the terrain cost model.
var (
	// ErrBadCost indicates a table entry with Move < 1 or Weight <= 0.
	ErrBadCost = errors.New("terrain: move cost must be >= 1 and weight > 0")

	// ErrUnknownType indicates a terrain name outside the known set.
	ErrUnknownType = errors.New("terrain: unknown terrain type")
)

// Type is the terrain of a single tile.
type Type uint8

const (
	Open Type = iota
	Difficult
	Fire
	Frost
	Water
	Elevated
	Bog
	Toxic
	typeCount
)

var typeNames = [typeCount]string{"open", "difficult", "fire", "frost", "water", "elevated", "bog", "toxic"}

// Types lists every terrain in declaration order.
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Valid reports whether t is one of the declared terrains.
func (t Type) Valid() bool { return t < typeCount }

// String returns the lower-case terrain name.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
	return typeNames[t]
}

// ParseType resolves a terrain name, case-insensitively.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range typeNames {
		if s == n {
			return Type(i), nil
		}
	}
	return Open, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// hazard describes what a hazardous terrain inflicts.
type hazard struct {
	elem mover.Element
	cond mover.Condition
}

var hazards = map[Type]hazard{
	Fire:  {mover.ElementFire, mover.ConditionBurning},
	Frost: {mover.ElementIce, mover.ConditionChilled},
	Water: {mover.ElementWater, mover.ConditionSoaked},
	Bog:   {mover.ElementEarth, mover.ConditionMired},
	Toxic: {mover.ElementPoison, mover.ConditionPoisoned},
}

// Hazard returns the element and condition a hazardous terrain is tied to.
// ok is false for non-hazardous terrain.
func (t Type) Hazard() (elem mover.Element, cond mover.Condition, ok bool) {
	h, ok := hazards[t]
	return h.elem, h.cond, ok
}

// Cost is the price of entering one tile.
type Cost struct {
	Move   int     `yaml:"move"`   // deducted from the movement budget
	Weight float64 `yaml:"weight"` // search preference penalty
}

// Validate returns ErrBadCost when the entry cannot be used.
func (c Cost) Validate() error {
	if c.Move < 1 || !(c.Weight > 0) {
		return fmt.Errorf("%w: got move=%d weight=%g", ErrBadCost, c.Move, c.Weight)
	}
	return nil
}

// Table maps terrains to costs. Missing entries fall back to DefaultTable.
type Table map[Type]Cost

// DefaultTable returns the stock cost table.
func DefaultTable() Table {
	return Table{
		Open:      {Move: 1, Weight: 1},
		Difficult: {Move: 2, Weight: 3},
		Fire:      {Move: 2, Weight: 20},
		Frost:     {Move: 2, Weight: 8},
		Water:     {Move: 3, Weight: 4},
		Elevated:  {Move: 2, Weight: 2},
		Bog:       {Move: 3, Weight: 6},
		Toxic:     {Move: 2, Weight: 15},
	}
}

// TableFromNames converts a name-keyed table (as read from configuration)
// into a Table. Returns ErrUnknownType for an unrecognised name.
func TableFromNames(named map[string]Cost) (Table, error) {
	out := make(Table, len(named))
	for name, c := range named {
		t, err := ParseType(name)
		if err != nil {
			return nil, err
		}
		out[t] = c
	}
	return out, nil
}
