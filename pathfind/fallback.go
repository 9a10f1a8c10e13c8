package pathfind

import (
	"github.com/katalvlaran/tacmove/core"
)

// fallback picks the best alternative when no exact path was validated.
// Tiers are tried in strict order; see the package documentation.
func (s *search) fallback() (*core.Path, string) {
	if nd, steps := s.bestProgress(); nd != nil {
		return s.result(nd, steps, true), tierProgress
	}
	if nd, steps := s.closestApproach(); nd != nil {
		return s.result(nd, steps, true), tierClosest
	}
	if p := s.emergencyStep(); p != nil {
		return p, tierEmergency
	}
	return nil, tierNone
}

// bestProgress returns the explored label with the largest reduction in
// Manhattan distance to the destination versus the origin, ties broken by
// lowest weight then expansion order. Only labels whose path validates are
// considered; progress must be strictly positive.
func (s *search) bestProgress() (*node, []core.Step) {
	start := core.Manhattan(s.origin, s.dest)
	return s.pick(func(a *node) (int, bool) {
		progress := start - core.Manhattan(a.p, s.dest)
		return -progress, progress > 0
	})
}

// closestApproach returns the explored label nearest the destination,
// ties broken by lowest weight then expansion order.
func (s *search) closestApproach() (*node, []core.Step) {
	return s.pick(func(a *node) (int, bool) {
		return core.Manhattan(a.p, s.dest), true
	})
}

// pick scans explored labels and returns the one with the smallest rank
// (then lowest weight, then earliest expansion) among those eligible and
// whose full path validates.
func (s *search) pick(rank func(*node) (int, bool)) (*node, []core.Step) {
	var (
		best      *node
		bestSteps []core.Step
		bestRank  int
	)
	size := s.mv.Size()
	for _, nd := range s.explored {
		r, ok := rank(nd)
		if !ok {
			continue
		}
		if best != nil && (r > bestRank || (r == bestRank && nd.g >= best.g)) {
			continue
		}
		steps := s.steps(nd)
		if s.occ.ValidatePath(s.origin, steps, size) >= 0 {
			continue
		}
		best, bestSteps, bestRank = nd, steps, r
	}
	return best, bestSteps
}

// emergencyStep tries a single step toward the destination: the primary
// axis first, then the secondary axis, then both reversed. When the
// secondary delta is zero both perpendicular directions are tried (east or
// south first). The first in-bounds, unoccupied, footprint-legal and
// affordable step wins; search weight plays no part in the order.
func (s *search) emergencyStep() *core.Path {
	size := s.mv.Size()
	for _, d := range emergencyOrder(s.origin, s.dest) {
		q := s.origin.Add(d)
		if !s.occ.CanStand(q, size) {
			continue
		}
		t := s.terrainAt(q)
		move, weight := s.model.Cost(t, s.mv)
		if move > s.budget {
			continue
		}
		return &core.Path{
			Steps:     []core.Step{{Point: q, Terrain: t}},
			Cost:      move,
			Weight:    weight,
			Partial:   true,
			Emergency: true,
		}
	}
	return nil
}

// emergencyOrder lists candidate directions for an emergency step from
// origin toward dest (origin != dest).
func emergencyOrder(origin, dest core.Point) []core.Direction {
	dx, dy := dest.X-origin.X, dest.Y-origin.Y
	xDir := axisDir(dx, core.DirEast, core.DirWest)
	yDir := axisDir(dy, core.DirSouth, core.DirNorth)

	var primary, secondary []core.Direction
	if abs(dx) >= abs(dy) {
		primary, secondary = xDir, yDir
	} else {
		primary, secondary = yDir, xDir
	}

	order := make([]core.Direction, 0, 4)
	seen := [4]bool{}
	add := func(ds ...core.Direction) {
		for _, d := range ds {
			if d != core.DirNone && !seen[d] {
				seen[d] = true
				order = append(order, d)
			}
		}
	}
	add(primary[0])
	add(secondary...)
	add(primary[0].Opposite())
	if len(secondary) == 1 {
		add(secondary[0].Opposite())
	}
	return order
}

// axisDir returns the direction matching the sign of delta, or both
// directions (positive first) when delta is zero.
func axisDir(delta int, pos, neg core.Direction) []core.Direction {
	switch {
	case delta > 0:
		return []core.Direction{pos}
	case delta < 0:
		return []core.Direction{neg}
	default:
		return []core.Direction{pos, neg}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
