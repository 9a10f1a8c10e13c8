package core

import (
	"github.com/zyedidia/generic/mapset"
)

// Occupancy is a snapshot of every tile covered by a mover other than the
// one being routed. It is built once per planning call and never mutated,
// so the search sees one consistent picture even if the Battlefield changes
// afterwards.
type Occupancy struct {
	size    int
	covered mapset.Set[Point]
}

// NewOccupancy snapshots bf, skipping the occupant whose ID is excludeID.
// Complexity: O(sum of footprint areas).
func NewOccupancy(bf Battlefield, excludeID string) *Occupancy {
	occ := &Occupancy{
		size:    bf.GridSize(),
		covered: mapset.New[Point](),
	}
	for _, o := range bf.Occupants() {
		if o.ID == excludeID {
			continue
		}
		for _, p := range Footprint(o.Position, o.Size) {
			occ.covered.Put(p)
		}
	}
	return occ
}

// GridSize returns N of the snapshotted grid.
func (o *Occupancy) GridSize() int { return o.size }

// Blocked reports whether p is covered by another mover.
func (o *Occupancy) Blocked(p Point) bool { return o.covered.Has(p) }

// CoveredCount returns the number of covered tiles.
func (o *Occupancy) CoveredCount() int { return o.covered.Size() }

// CanStand reports whether a size×size footprint anchored at anchor lies
// in bounds and covers no blocked tile.
func (o *Occupancy) CanStand(anchor Point, size int) bool {
	if anchor.X < 0 || anchor.Y < 0 || anchor.X+size > o.size || anchor.Y+size > o.size {
		return false
	}
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			if o.covered.Has(Point{X: anchor.X + dx, Y: anchor.Y + dy}) {
				return false
			}
		}
	}
	return true
}

// ValidatePath checks every step of a path for full-footprint legality and
// 4-connectivity starting from origin. It returns the index of the first
// failing step, or -1 when the whole path is legal.
func (o *Occupancy) ValidatePath(origin Point, steps []Step, size int) int {
	prev := origin
	for i, s := range steps {
		if Manhattan(prev, s.Point) != 1 || !o.CanStand(s.Point, size) {
			return i
		}
		prev = s.Point
	}
	return -1
}
