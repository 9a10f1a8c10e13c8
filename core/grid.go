package core

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/tacmove/terrain"
)

// Grid is a thread-safe in-memory Battlefield.
//
// mu guards cells and occupants. Occupant lookups are linear in the number
// of occupants, which stays small on a tactical map.
type Grid struct {
	mu sync.RWMutex

	size      int
	cells     []terrain.Type      // row-major terrain
	occupants map[string]Occupant // occupant ID → occupant
}

// NewGrid constructs a Grid from a non-empty N×N terrain slice, indexed
// cells[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid or ErrNonSquare on malformed input.
// Complexity: O(N²) time and memory.
func NewGrid(cells [][]terrain.Type) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(cells)
	for _, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("%w: got %d rows, row of length %d", ErrNonSquare, n, len(row))
		}
	}
	g := newGrid(n)
	for y := 0; y < n; y++ {
		copy(g.cells[y*n:(y+1)*n], cells[y])
	}

	return g, nil
}

// NewUniformGrid returns an n×n Grid filled with terrain t.
// Returns ErrEmptyGrid when n < 1.
func NewUniformGrid(n int, t terrain.Type) (*Grid, error) {
	if n < 1 {
		return nil, ErrEmptyGrid
	}
	g := newGrid(n)
	for i := range g.cells {
		g.cells[i] = t
	}
	return g, nil
}

func newGrid(n int) *Grid {
	return &Grid{
		size:      n,
		cells:     make([]terrain.Type, n*n),
		occupants: make(map[string]Occupant),
	}
}

// GridSize returns N.
func (g *Grid) GridSize() int { return g.size }

// TerrainAt returns the terrain at (x,y). Panics when out of bounds.
func (g *Grid) TerrainAt(x, y int) terrain.Type {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[Index(Point{X: x, Y: y}, g.size)]
}

// SetTerrain replaces the terrain at p.
func (g *Grid) SetTerrain(p Point, t terrain.Type) error {
	if !InBounds(p, g.size) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[Index(p, g.size)] = t
	return nil
}

// IsOccupied reports whether any occupant other than excludeID covers (x,y).
func (g *Grid) IsOccupied(x, y int, excludeID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.coveredBy(Point{X: x, Y: y}, excludeID) != ""
}

// coveredBy returns the ID of an occupant other than excludeID covering p.
// Callers hold mu.
func (g *Grid) coveredBy(p Point, excludeID string) string {
	for id, o := range g.occupants {
		if id != excludeID && o.Covers(p) {
			return id
		}
	}
	return ""
}

// Occupants returns every occupant sorted by ID.
func (g *Grid) Occupants() []Occupant {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Occupant, 0, len(g.occupants))
	for _, o := range g.occupants {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Occupant returns the occupant with the given ID.
func (g *Grid) Occupant(id string) (Occupant, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	o, ok := g.occupants[id]
	return o, ok
}

// Place adds an occupant. Its footprint must lie in bounds and must not
// overlap any other occupant.
func (g *Grid) Place(o Occupant) error {
	if o.ID == "" {
		return ErrEmptyOccupantID
	}
	if o.Size < 1 {
		return fmt.Errorf("%w: %q has size %d", ErrBadFootprint, o.ID, o.Size)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.occupants[o.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateOccupant, o.ID)
	}
	if err := g.checkFootprint(o.ID, o.Position, o.Size); err != nil {
		return err
	}
	g.occupants[o.ID] = o

	return nil
}

// Relocate moves an occupant's anchor to p, keeping its size and team.
func (g *Grid) Relocate(id string, p Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	o, ok := g.occupants[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrOccupantNotFound, id)
	}
	if err := g.checkFootprint(id, p, o.Size); err != nil {
		return err
	}
	o.Position = p
	g.occupants[id] = o

	return nil
}

// Remove deletes an occupant.
func (g *Grid) Remove(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.occupants[id]; !ok {
		return fmt.Errorf("%w: %q", ErrOccupantNotFound, id)
	}
	delete(g.occupants, id)
	return nil
}

// checkFootprint validates a size×size footprint at anchor for occupant id.
// Callers hold mu.
func (g *Grid) checkFootprint(id string, anchor Point, size int) error {
	for _, p := range Footprint(anchor, size) {
		if !InBounds(p, g.size) {
			return fmt.Errorf("%w: %q footprint reaches %v", ErrOutOfBounds, id, p)
		}
		if other := g.coveredBy(p, id); other != "" {
			return fmt.Errorf("%w: %q overlaps %q at %v", ErrCollision, id, other, p)
		}
	}
	return nil
}

// Clone returns a deep copy of the grid.
// Complexity: O(N² + occupants).
func (g *Grid) Clone() *Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := newGrid(g.size)
	copy(c.cells, g.cells)
	for id, o := range g.occupants {
		c.occupants[id] = o
	}
	return c
}
