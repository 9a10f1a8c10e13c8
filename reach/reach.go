package reach

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/mover"
	"github.com/katalvlaran/tacmove/terrain"
)

// arrival is one admitted visit to a tile.
type arrival struct {
	p         core.Point
	terrain   terrain.Type
	remaining int
	cost      int
	weight    float64
	steps     int
	parent    *arrival // nil for the origin
}

// walker encapsulates mutable state for a single From call.
type walker struct {
	bf   core.Battlefield
	occ  *core.Occupancy
	mv   *mover.Mover
	opts Options
	n    int

	queue    []*arrival
	most     []int      // per tile: most budget left by any admitted arrival, -1 if none
	best     []*arrival // per tile: arrival reported in the result
	expanded int
}

// From returns every tile m can reach from origin within budget, excluding
// the origin itself, sorted by (TotalCost, Y, X).
//
// Preconditions and validation (in order):
//  1. bf must be non-nil (ErrNilBattlefield).
//  2. m must be non-nil (ErrNilMover).
//  3. Options must be valid (ErrOptionViolation).
//  4. budget must be ≥ 0 (ErrNegativeBudget).
//  5. origin must lie on the grid (ErrOriginOutOfBounds).
//
// An empty, non-nil slice means the mover cannot leave its tile.
func From(bf core.Battlefield, origin core.Point, budget int, m *mover.Mover, opts ...Option) ([]Destination, error) {
	if bf == nil {
		return nil, ErrNilBattlefield
	}
	if m == nil {
		return nil, ErrNilMover
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	n := bf.GridSize()
	if !core.InBounds(origin, n) {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrOriginOutOfBounds, origin, n, n)
	}

	w := &walker{
		bf:   bf,
		occ:  core.NewOccupancy(bf, m.ID()),
		mv:   m,
		opts: o,
		n:    n,
		most: make([]int, n*n),
		best: make([]*arrival, n*n),
	}
	for i := range w.most {
		w.most[i] = -1
	}

	w.enqueue(&arrival{p: origin, terrain: bf.TerrainAt(origin.X, origin.Y), remaining: budget})
	w.loop()
	out := w.collect()

	o.Logger.WithFields(logrus.Fields{
		"mover":     m.ID(),
		"origin":    origin.String(),
		"budget":    budget,
		"expanded":  w.expanded,
		"reachable": len(out),
	}).Debug("reachable set explored")

	return out, nil
}

// enqueue records a as the best known arrival at its tile and queues it.
func (w *walker) enqueue(a *arrival) {
	idx := core.Index(a.p, w.n)
	w.most[idx] = a.remaining
	w.best[idx] = a
	if a.parent != nil {
		w.opts.OnVisit(w.destination(a))
	}
	w.queue = append(w.queue, a)
}

// loop processes the queue in FIFO order until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		a := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		// A richer arrival reached this tile after a was queued.
		if a.remaining < w.most[core.Index(a.p, w.n)] {
			continue
		}
		w.expanded++
		w.enqueueNeighbors(a)
	}
}

// enqueueNeighbors admits every legal, affordable neighbour of a that no
// earlier arrival dominates.
func (w *walker) enqueueNeighbors(a *arrival) {
	if a.remaining == 0 {
		return
	}
	if w.opts.MaxSteps > 0 && a.steps >= w.opts.MaxSteps {
		return
	}
	size := w.mv.Size()
	for _, d := range core.Dirs4 {
		q := a.p.Add(d)
		if !w.occ.CanStand(q, size) {
			continue
		}
		t := w.bf.TerrainAt(q.X, q.Y)
		move, weight := w.opts.Model.Cost(t, w.mv)
		if move > a.remaining {
			continue
		}
		if !w.opts.FilterStep(a.p, q) {
			continue
		}
		next := &arrival{
			p:         q,
			terrain:   t,
			remaining: a.remaining - move,
			cost:      a.cost + move,
			weight:    a.weight + weight,
			steps:     a.steps + 1,
			parent:    a,
		}
		idx := core.Index(q, w.n)
		switch {
		case next.remaining > w.most[idx]:
			w.enqueue(next)
		case next.remaining == w.most[idx] && next.weight < w.best[idx].weight:
			// Same budget, lighter route: report it but do not walk on from it.
			w.best[idx] = next
			w.opts.OnVisit(w.destination(next))
		}
	}
}

// collect converts the best arrival per tile into sorted Destinations.
func (w *walker) collect() []Destination {
	out := make([]Destination, 0, len(w.best))
	for _, a := range w.best {
		if a == nil || a.parent == nil {
			continue
		}
		out = append(out, w.destination(a))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TotalCost != b.TotalCost {
			return a.TotalCost < b.TotalCost
		}
		if a.Tile.Y != b.Tile.Y {
			return a.Tile.Y < b.Tile.Y
		}
		return a.Tile.X < b.Tile.X
	})
	return out
}

func (w *walker) destination(a *arrival) Destination {
	steps := make([]core.Step, a.steps)
	for cur, i := a, a.steps-1; cur.parent != nil; cur, i = cur.parent, i-1 {
		steps[i] = core.Step{Point: cur.p, Terrain: cur.terrain}
	}
	return Destination{
		Tile:            a.p,
		Path:            steps,
		TotalCost:       a.cost,
		TotalWeight:     a.weight,
		BudgetRemaining: a.remaining,
	}
}
