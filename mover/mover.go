package mover

// Mover is an immutable unit description used by the planners.
// Position is not part of the Mover: planners receive the origin
// explicitly and occupancy comes from the battlefield.
type Mover struct {
	id   string
	size int

	flying     bool
	affinities bits
	immunities bits
	conditions bits

	err error
}

// New builds a Mover with the given ID, footprint size and traits.
// Returns ErrEmptyID, ErrBadSize, ErrBadElement or ErrBadCondition.
func New(id string, size int, opts ...Option) (*Mover, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if size < 1 {
		return nil, ErrBadSize
	}
	m := &Mover{id: id, size: size}
	for _, opt := range opts {
		opt(m)
	}
	if m.err != nil {
		return nil, m.err
	}

	return m, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew(id string, size int, opts ...Option) *Mover {
	m, err := New(id, size, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// ID returns the mover identifier; occupancy checks exclude it.
func (m *Mover) ID() string { return m.id }

// Size returns the footprint side length.
func (m *Mover) Size() int { return m.size }

// Flying reports whether terrain is ignored.
func (m *Mover) Flying() bool { return m.flying }

// HasAffinity reports whether the mover is attuned to e.
func (m *Mover) HasAffinity(e Element) bool {
	return e < elementCount && m.affinities.has(uint8(e))
}

// ImmuneTo reports whether the mover is immune to e.
func (m *Mover) ImmuneTo(e Element) bool {
	return e < elementCount && m.immunities.has(uint8(e))
}

// Has reports whether condition c is active.
func (m *Mover) Has(c Condition) bool {
	return c < conditionCount && m.conditions.has(uint8(c))
}

// Shrugs reports whether a hazard of element e that inflicts condition c
// leaves the mover unaffected: a matching affinity or immunity, or the
// condition is already active.
func (m *Mover) Shrugs(e Element, c Condition) bool {
	if e != ElementNone && (m.HasAffinity(e) || m.ImmuneTo(e)) {
		return true
	}
	return m.Has(c)
}
