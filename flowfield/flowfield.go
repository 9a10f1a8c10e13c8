package flowfield

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/mover"
	"github.com/katalvlaran/tacmove/terrain"
)

// Field is a grid-wide map of (accumulated weight, best direction) toward
// one destination. It is immutable once built.
type Field struct {
	size    int
	dest    core.Point
	weights []float64        // row-major; +Inf when unreachable
	dirs    []core.Direction // row-major; DirNone at dest and unreachable tiles
}

// Build computes the flow field for dest as seen by m on bf.
//
// Preconditions and validation (in order):
//  1. bf must be non-nil (ErrNilBattlefield).
//  2. m must be non-nil (ErrNilMover).
//  3. dest must lie on the grid (ErrDestinationOutOfBounds).
//
// The occupancy snapshot excludes m itself; pass WithOccupancy to reuse a
// snapshot the caller already holds.
//
// Complexity: O(N² log N) time, O(N²) space.
func Build(bf core.Battlefield, dest core.Point, m *mover.Mover, opts ...Option) (*Field, error) {
	if bf == nil {
		return nil, ErrNilBattlefield
	}
	if m == nil {
		return nil, ErrNilMover
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := bf.GridSize()
	if !core.InBounds(dest, n) {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrDestinationOutOfBounds, dest, n, n)
	}
	occ := cfg.Occupancy
	if occ == nil {
		occ = core.NewOccupancy(bf, m.ID())
	}

	r := &runner{
		bf:    bf,
		occ:   occ,
		model: cfg.Model,
		mv:    m,
		field: newField(n, dest),
		pq:    make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	cfg.Logger.WithFields(logrus.Fields{
		"mover":   m.ID(),
		"dest":    dest.String(),
		"settled": r.settled,
	}).Debug("flow field built")

	return r.field, nil
}

func newField(n int, dest core.Point) *Field {
	f := &Field{
		size:    n,
		dest:    dest,
		weights: make([]float64, n*n),
		dirs:    make([]core.Direction, n*n),
	}
	for i := range f.weights {
		f.weights[i] = math.Inf(1)
		f.dirs[i] = core.DirNone
	}
	return f
}

// runner holds the mutable state for a single Build.
type runner struct {
	bf      core.Battlefield
	occ     *core.Occupancy
	model   *terrain.Model
	mv      *mover.Mover
	field   *Field
	pq      nodePQ
	settled int
}

// init seeds the destination with weight 0.
func (r *runner) init() {
	idx := core.Index(r.field.dest, r.field.size)
	r.field.weights[idx] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: 0})
}

// process pops tiles in increasing weight and relaxes their neighbours.
// Stale heap entries (dist above the recorded weight) are skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist > r.field.weights[item.idx] {
			continue
		}
		r.settled++
		r.relax(item.idx)
	}
}

// relax walks one step away from u. Reaching u from a neighbour v costs
// the search weight of u's terrain, so dist[v] = dist[u] + weight(u).
func (r *runner) relax(u int) {
	n := r.field.size
	up := core.Coordinate(u, n)
	_, w := r.model.Cost(r.bf.TerrainAt(up.X, up.Y), r.mv)
	base := r.field.weights[u]

	for _, d := range core.Dirs4 {
		vp := up.Add(d)
		if !core.InBounds(vp, n) || r.occ.Blocked(vp) {
			continue
		}
		v := core.Index(vp, n)
		nd := base + w
		if nd >= r.field.weights[v] {
			continue
		}
		r.field.weights[v] = nd
		r.field.dirs[v] = d.Opposite()
		heap.Push(&r.pq, &nodeItem{idx: v, dist: nd})
	}
}

// Size returns N.
func (f *Field) Size() int { return f.size }

// Destination returns the tile the field points toward.
func (f *Field) Destination() core.Point { return f.dest }

// Weight returns the accumulated weight from p to the destination, +Inf
// when unreachable. Panics when p is off the grid.
func (f *Field) Weight(p core.Point) float64 {
	return f.weights[core.Index(p, f.size)]
}

// Direction returns the best step from p toward the destination, DirNone
// at the destination and on unreachable tiles. Panics when p is off the grid.
func (f *Field) Direction(p core.Point) core.Direction {
	return f.dirs[core.Index(p, f.size)]
}

// Reachable reports whether p has a finite weight.
func (f *Field) Reachable(p core.Point) bool {
	return !math.IsInf(f.Weight(p), 1)
}

// Trace follows directions from p to the destination and returns the tiles
// entered, p excluded. Returns nil when p is unreachable and an empty slice
// when p is the destination.
func (f *Field) Trace(p core.Point) []core.Point {
	if !f.Reachable(p) {
		return nil
	}
	out := make([]core.Point, 0)
	for cur := p; cur != f.dest; {
		d := f.Direction(cur)
		if d == core.DirNone || len(out) > f.size*f.size {
			panic(fmt.Sprintf("flowfield: broken direction chain at %v", cur))
		}
		cur = cur.Add(d)
		out = append(out, cur)
	}
	return out
}

// nodeItem is a tile index and its tentative weight.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// lazy decrease-key: improved tiles are pushed again and stale entries are
// dropped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
