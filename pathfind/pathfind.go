package pathfind

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/flowfield"
	"github.com/katalvlaran/tacmove/mover"
	"github.com/katalvlaran/tacmove/terrain"
)

// FindPath plans a route for m from origin toward dest within budget.
//
// Preconditions and validation (in order):
//  1. bf must be non-nil (ErrNilBattlefield).
//  2. m must be non-nil (ErrNilMover).
//  3. Options must be valid (ErrOptionViolation).
//  4. budget must be ≥ 0 (ErrNegativeBudget).
//  5. origin must lie on the grid (ErrOriginOutOfBounds).
//
// A destination off the grid returns (nil, nil) without searching, and
// origin == dest returns an empty exact path.
func FindPath(bf core.Battlefield, origin, dest core.Point, budget int, m *mover.Mover, opts ...Option) (*core.Path, error) {
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
	if cfg.err != nil {
		return nil, cfg.err
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	n := bf.GridSize()
	if !core.InBounds(origin, n) {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrOriginOutOfBounds, origin, n, n)
	}

	log := cfg.Logger.WithFields(logrus.Fields{
		"mover":  m.ID(),
		"origin": origin.String(),
		"dest":   dest.String(),
		"budget": budget,
	})
	if !core.InBounds(dest, n) {
		log.Debug("destination off grid")
		return nil, nil
	}
	if origin == dest {
		return &core.Path{Steps: []core.Step{}}, nil
	}

	occ := core.NewOccupancy(bf, m.ID())
	field, err := flowfield.Build(bf, dest, m,
		flowfield.WithCostModel(cfg.Model),
		flowfield.WithOccupancy(occ),
		flowfield.WithLogger(cfg.Logger),
	)
	if err != nil {
		// dest was bounds-checked above; Build cannot fail here.
		panic(err)
	}

	s := &search{
		bf:      bf,
		occ:     occ,
		field:   field,
		model:   cfg.Model,
		mv:      m,
		origin:  origin,
		dest:    dest,
		budget:  budget,
		penalty: cfg.UnreachablePenalty,
		limit:   cfg.MaxExpansions,
		labels:  make([][]*node, n*n),
	}

	path, tier := s.run()
	log.WithFields(logrus.Fields{
		"tier":     tier,
		"expanded": len(s.explored),
		"steps":    path.Len(),
	}).Debug("path planned")

	return path, nil
}

// Tier names reported in logs.
const (
	tierExact     = "exact"
	tierProgress  = "progress"
	tierClosest   = "closest"
	tierEmergency = "emergency"
	tierNone      = "none"
)

// node is one search label: a tile reached with some remaining budget and
// accumulated weight. parent links rebuild the path.
type node struct {
	p         core.Point
	terrain   terrain.Type
	remaining int
	cost      int
	g         float64
	h         float64
	parent    *node
	seq       int

	expanded bool
	stale    bool
}

func (nd *node) f() float64 { return nd.g + nd.h }

// search holds the mutable state for a single FindPath call.
type search struct {
	bf      core.Battlefield
	occ     *core.Occupancy
	field   *flowfield.Field
	model   *terrain.Model
	mv      *mover.Mover
	origin  core.Point
	dest    core.Point
	budget  int
	penalty float64
	limit   int

	open     nodePQ
	labels   [][]*node // per tile index
	explored []*node   // expanded non-origin labels, in expansion order
	seq      int
}

// run executes A* and the fallback tiers.
func (s *search) run() (*core.Path, string) {
	heap.Init(&s.open)
	s.push(&node{p: s.origin, terrain: s.terrainAt(s.origin), remaining: s.budget})

	for pops := 0; s.open.Len() > 0; {
		if s.limit > 0 && pops == s.limit {
			break
		}
		cur := heap.Pop(&s.open).(*node)
		if cur.stale {
			continue
		}
		cur.expanded = true
		pops++

		if cur.p == s.dest {
			steps := s.steps(cur)
			if s.occ.ValidatePath(s.origin, steps, s.mv.Size()) < 0 {
				return s.result(cur, steps, false), tierExact
			}
			// expand admits only standable tiles, so a label built by expand
			// always validates. Anything else is closed without expansion.
			continue
		}
		if cur.parent != nil {
			s.explored = append(s.explored, cur)
		}
		if cur.remaining > 0 {
			s.expand(cur)
		}
	}

	return s.fallback()
}

// expand pushes every legal, affordable neighbour of cur, visiting
// directions in flow-field order.
func (s *search) expand(cur *node) {
	size := s.mv.Size()
	for _, d := range s.orderedDirs(cur.p) {
		q := cur.p.Add(d)
		if !s.occ.CanStand(q, size) {
			continue
		}
		t := s.terrainAt(q)
		move, weight := s.model.Cost(t, s.mv)
		if move > cur.remaining {
			continue
		}
		s.push(&node{
			p:         q,
			terrain:   t,
			remaining: cur.remaining - move,
			cost:      cur.cost + move,
			g:         cur.g + weight,
			parent:    cur,
		})
	}
}

// push inserts nd unless an existing label at its tile dominates it.
// Unexpanded labels that nd dominates are marked stale.
func (s *search) push(nd *node) {
	idx := core.Index(nd.p, s.field.Size())
	for _, l := range s.labels[idx] {
		if l.stale {
			continue
		}
		if l.g <= nd.g && l.remaining >= nd.remaining {
			return
		}
	}
	for _, l := range s.labels[idx] {
		if !l.expanded && nd.g <= l.g && nd.remaining >= l.remaining {
			l.stale = true
		}
	}
	nd.h = s.heuristic(nd.p)
	nd.seq = s.seq
	s.seq++
	s.labels[idx] = append(s.labels[idx], nd)
	heap.Push(&s.open, nd)
}

// heuristic is the flow-field weight, or a scaled Manhattan distance when
// the field cannot reach p.
func (s *search) heuristic(p core.Point) float64 {
	w := s.field.Weight(p)
	if math.IsInf(w, 1) {
		return float64(core.Manhattan(p, s.dest)) * s.penalty
	}
	return w
}

// orderedDirs returns the four directions sorted by the flow-field weight
// of the neighbour they lead to; off-grid neighbours sort last.
func (s *search) orderedDirs(p core.Point) []core.Direction {
	dirs := append([]core.Direction(nil), core.Dirs4[:]...)
	n := s.field.Size()
	key := func(d core.Direction) float64 {
		q := p.Add(d)
		if !core.InBounds(q, n) {
			return math.Inf(1)
		}
		return s.field.Weight(q)
	}
	sort.SliceStable(dirs, func(i, j int) bool { return key(dirs[i]) < key(dirs[j]) })
	return dirs
}

func (s *search) terrainAt(p core.Point) terrain.Type {
	return s.bf.TerrainAt(p.X, p.Y)
}

// steps rebuilds the path from the origin (exclusive) to nd (inclusive).
func (s *search) steps(nd *node) []core.Step {
	var rev []core.Step
	for cur := nd; cur.parent != nil; cur = cur.parent {
		rev = append(rev, core.Step{Point: cur.p, Terrain: cur.terrain})
	}
	out := make([]core.Step, len(rev))
	for i, st := range rev {
		out[len(rev)-1-i] = st
	}
	return out
}

func (s *search) result(nd *node, steps []core.Step, partial bool) *core.Path {
	return &core.Path{
		Steps:   steps,
		Cost:    nd.cost,
		Weight:  nd.g,
		Partial: partial,
	}
}

// nodePQ is a min-heap of *node ordered by f, then h, then insertion order.
type nodePQ []*node

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
