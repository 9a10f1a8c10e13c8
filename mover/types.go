package mover

import (
	"errors"
	"fmt"
)

// Sentinel errors for mover construction.
var (
	// ErrEmptyID indicates a mover was created without an identifier.
	ErrEmptyID = errors.New("mover: ID is empty")

	// ErrBadSize indicates a footprint side length below 1.
	ErrBadSize = errors.New("mover: footprint size must be at least 1")

	// ErrBadElement indicates an element value outside the known set.
	ErrBadElement = errors.New("mover: unknown element")

	// ErrBadCondition indicates a condition value outside the known set.
	ErrBadCondition = errors.New("mover: unknown condition")
)

// Element is an elemental type a mover can be attuned to or immune against.
type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementIce
	ElementWater
	ElementEarth
	ElementPoison
	elementCount
)

var elementNames = [elementCount]string{"none", "fire", "ice", "water", "earth", "poison"}

// String returns the lower-case element name.
func (e Element) String() string {
	if e >= elementCount {
		return fmt.Sprintf("element(%d)", uint8(e))
	}
	return elementNames[e]
}

// Condition is an active status tag that changes terrain interaction.
// A mover that already carries the condition a hazard would inflict is
// unaffected by that hazard.
type Condition uint8

const (
	ConditionBurning Condition = iota
	ConditionChilled
	ConditionSoaked
	ConditionMired
	ConditionPoisoned
	conditionCount
)

var conditionNames = [conditionCount]string{"burning", "chilled", "soaked", "mired", "poisoned"}

// String returns the lower-case condition name.
func (c Condition) String() string {
	if c >= conditionCount {
		return fmt.Sprintf("condition(%d)", uint8(c))
	}
	return conditionNames[c]
}

// Option configures a Mover at construction time.
type Option func(*Mover)

// WithFlight marks the mover as ignoring terrain entirely.
func WithFlight() Option {
	return func(m *Mover) { m.flying = true }
}

// WithAffinity attunes the mover to the given elements.
func WithAffinity(elems ...Element) Option {
	return func(m *Mover) {
		for _, e := range elems {
			m.affinities = m.affinities.with(uint8(e), uint8(elementCount), &m.err, ErrBadElement)
		}
	}
}

// WithImmunity makes the mover immune to the given elements.
func WithImmunity(elems ...Element) Option {
	return func(m *Mover) {
		for _, e := range elems {
			m.immunities = m.immunities.with(uint8(e), uint8(elementCount), &m.err, ErrBadElement)
		}
	}
}

// WithConditions sets the active condition tags.
func WithConditions(conds ...Condition) Option {
	return func(m *Mover) {
		for _, c := range conds {
			m.conditions = m.conditions.with(uint8(c), uint8(conditionCount), &m.err, ErrBadCondition)
		}
	}
}

// bits is a small fixed bitset indexed by Element or Condition.
type bits uint16

func (b bits) with(v, limit uint8, errp *error, sentinel error) bits {
	if v >= limit {
		if *errp == nil {
			*errp = fmt.Errorf("%w: %d", sentinel, v)
		}
		return b
	}
	return b | 1<<v
}

func (b bits) has(v uint8) bool { return b&(1<<v) != 0 }
