package pathfind_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tacmove/config"
	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/mover"
	"github.com/katalvlaran/tacmove/pathfind"
	"github.com/katalvlaran/tacmove/terrain"
)

func openGrid(t testing.TB, n int) *core.Grid {
	t.Helper()
	g, err := core.NewUniformGrid(n, terrain.Open)
	require.NoError(t, err)
	return g
}

// wall places 1×1 blockers at every point.
func wall(t testing.TB, g *core.Grid, pts ...core.Point) {
	t.Helper()
	for i, p := range pts {
		require.NoError(t, g.Place(core.Occupant{ID: fmt.Sprintf("wall-%d", i), Position: p, Size: 1}))
	}
}

// randomGrid fills an n×n grid with random terrain and up to blockers
// randomly sized occupants.
func randomGrid(t testing.TB, r *rand.Rand, n, blockers, maxSize int) *core.Grid {
	t.Helper()
	g := openGrid(t, n)
	types := terrain.Types()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			require.NoError(t, g.SetTerrain(core.Pt(x, y), types[r.Intn(len(types))]))
		}
	}
	for i := 0; i < blockers; i++ {
		_ = g.Place(core.Occupant{
			ID:       fmt.Sprintf("o%d", i),
			Position: core.Pt(r.Intn(n), r.Intn(n)),
			Size:     1 + r.Intn(maxSize),
		})
	}
	return g
}

// standable returns a random anchor where a size-k footprint fits.
func standable(r *rand.Rand, occ *core.Occupancy, n, k int) core.Point {
	for {
		p := core.Pt(r.Intn(n), r.Intn(n))
		if occ.CanStand(p, k) {
			return p
		}
	}
}

// TestFindPath_Errors verifies input validation order and sentinels.
func TestFindPath_Errors(t *testing.T) {
	g := openGrid(t, 4)
	unit := mover.MustNew("u", 1)
	o, d := core.Pt(0, 0), core.Pt(3, 3)

	_, err := pathfind.FindPath(nil, o, d, 5, unit)
	assert.ErrorIs(t, err, pathfind.ErrNilBattlefield)

	_, err = pathfind.FindPath(g, o, d, 5, nil)
	assert.ErrorIs(t, err, pathfind.ErrNilMover)

	_, err = pathfind.FindPath(g, o, d, 5, unit, pathfind.WithCostModel(nil))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)

	_, err = pathfind.FindPath(g, o, d, 5, unit, pathfind.WithUnreachablePenalty(0))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)

	_, err = pathfind.FindPath(g, o, d, 5, unit, pathfind.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)

	// Option errors win over a bad budget.
	_, err = pathfind.FindPath(g, o, d, -1, unit, pathfind.WithCostModel(nil))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)

	_, err = pathfind.FindPath(g, o, d, -1, unit)
	assert.ErrorIs(t, err, pathfind.ErrNegativeBudget)

	_, err = pathfind.FindPath(g, core.Pt(4, 0), d, 5, unit)
	assert.ErrorIs(t, err, pathfind.ErrOriginOutOfBounds)
}

// TestFindPath_DestinationOffGrid checks the short-circuit to nil.
func TestFindPath_DestinationOffGrid(t *testing.T) {
	g := openGrid(t, 4)
	for _, d := range []core.Point{core.Pt(-1, 0), core.Pt(4, 2), core.Pt(1, 9)} {
		p, err := pathfind.FindPath(g, core.Pt(0, 0), d, 10, mover.MustNew("u", 1))
		require.NoError(t, err)
		assert.Nil(t, p, d.String())
	}
}

// TestFindPath_OriginIsDestination checks the empty exact path.
func TestFindPath_OriginIsDestination(t *testing.T) {
	g := openGrid(t, 4)
	for _, budget := range []int{0, 7} {
		p, err := pathfind.FindPath(g, core.Pt(2, 1), core.Pt(2, 1), budget, mover.MustNew("u", 1))
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Empty(t, p.Steps)
		assert.Zero(t, p.Cost)
		assert.Zero(t, p.Weight)
		assert.False(t, p.Partial)
		assert.False(t, p.Emergency)
	}
}

// TestFindPath_OpenGridManhattan checks path length and cost equal the
// Manhattan distance on uniform open terrain.
func TestFindPath_OpenGridManhattan(t *testing.T) {
	const n = 8
	g := openGrid(t, n)
	unit := mover.MustNew("u", 1)
	origin := core.Pt(3, 4)
	occ := core.NewOccupancy(g, unit.ID())

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dest := core.Pt(x, y)
			p, err := pathfind.FindPath(g, origin, dest, 2*n, unit)
			require.NoError(t, err)
			require.NotNil(t, p, dest.String())
			dist := core.Manhattan(origin, dest)
			assert.Equal(t, dist, p.Len(), dest.String())
			assert.Equal(t, dist, p.Cost, dest.String())
			assert.Equal(t, float64(dist), p.Weight, dest.String())
			assert.False(t, p.Partial)
			assert.Equal(t, dest, p.End(origin))
			assert.Equal(t, -1, occ.ValidatePath(origin, p.Steps, 1))
		}
	}
}

// TestFindPath_TenByTen covers the full-budget and short-budget scenarios.
func TestFindPath_TenByTen(t *testing.T) {
	g := openGrid(t, 10)
	unit := mover.MustNew("u", 1)
	origin, dest := core.Pt(0, 0), core.Pt(9, 9)

	full, err := pathfind.FindPath(g, origin, dest, 30, unit)
	require.NoError(t, err)
	require.NotNil(t, full)
	assert.False(t, full.Partial)
	assert.Equal(t, 18, full.Cost)
	assert.Equal(t, 18, full.Len())
	assert.Equal(t, dest, full.End(origin))

	short, err := pathfind.FindPath(g, origin, dest, 10, unit)
	require.NoError(t, err)
	require.NotNil(t, short)
	assert.True(t, short.Partial)
	assert.False(t, short.Emergency)
	assert.LessOrEqual(t, short.Cost, 10)
	progress := core.Manhattan(origin, dest) - core.Manhattan(short.End(origin), dest)
	assert.Greater(t, progress, 0)
	// Every budget point went toward the destination.
	assert.Equal(t, 10, progress)
}

// TestFindPath_EnclosedOrigin checks a boxed-in mover gets nil.
func TestFindPath_EnclosedOrigin(t *testing.T) {
	g := openGrid(t, 5)
	wall(t, g, core.Pt(2, 1), core.Pt(3, 2), core.Pt(2, 3), core.Pt(1, 2))

	p, err := pathfind.FindPath(g, core.Pt(2, 2), core.Pt(4, 4), 20, mover.MustNew("u", 1))
	require.NoError(t, err)
	assert.Nil(t, p)
}

// TestFindPath_ZeroBudget checks that no budget means no movement.
func TestFindPath_ZeroBudget(t *testing.T) {
	g := openGrid(t, 5)
	p, err := pathfind.FindPath(g, core.Pt(0, 0), core.Pt(4, 4), 0, mover.MustNew("u", 1))
	require.NoError(t, err)
	assert.Nil(t, p)
}

// TestFindPath_HazardCorridor checks that a discouraged but affordable tile
// is used when it is the only route.
func TestFindPath_HazardCorridor(t *testing.T) {
	g := openGrid(t, 5)
	wall(t, g, core.Pt(2, 0), core.Pt(2, 1), core.Pt(2, 3), core.Pt(2, 4))
	require.NoError(t, g.SetTerrain(core.Pt(2, 2), terrain.Fire))
	origin, dest := core.Pt(0, 2), core.Pt(4, 2)

	p, err := pathfind.FindPath(g, origin, dest, 10, mover.MustNew("u", 1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Partial)
	assert.Contains(t, p.Tiles(), core.Pt(2, 2))
	assert.Equal(t, 5, p.Cost)
	assert.Equal(t, 23.0, p.Weight)
	assert.Equal(t, terrain.Fire, p.Steps[1].Terrain)

	// A fire-immune mover pays the open rate.
	p, err = pathfind.FindPath(g, origin, dest, 10, mover.MustNew("f", 1, mover.WithImmunity(mover.ElementFire)))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 4, p.Cost)
	assert.Equal(t, 4.0, p.Weight)
}

// TestFindPath_AvoidsHazardWhenDetourExists checks weight steers around fire
// while budget allows the detour.
func TestFindPath_AvoidsHazardWhenDetourExists(t *testing.T) {
	g := openGrid(t, 5)
	require.NoError(t, g.SetTerrain(core.Pt(2, 2), terrain.Fire))
	origin, dest := core.Pt(0, 2), core.Pt(4, 2)

	p, err := pathfind.FindPath(g, origin, dest, 10, mover.MustNew("u", 1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Partial)
	assert.NotContains(t, p.Tiles(), core.Pt(2, 2))
	assert.Equal(t, 6, p.Cost)

	// With exactly enough budget for the straight line, fire is the only option.
	p, err = pathfind.FindPath(g, origin, dest, 5, mover.MustNew("u", 1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Partial)
	assert.Contains(t, p.Tiles(), core.Pt(2, 2))
	assert.Equal(t, 5, p.Cost)
}

// TestFindPath_Flying checks fliers ignore terrain costs.
func TestFindPath_Flying(t *testing.T) {
	g := openGrid(t, 4)
	for x := 0; x < 4; x++ {
		require.NoError(t, g.SetTerrain(core.Pt(x, 0), terrain.Bog))
	}
	p, err := pathfind.FindPath(g, core.Pt(0, 0), core.Pt(3, 0), 3, mover.MustNew("bird", 1, mover.WithFlight()))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Partial)
	assert.Equal(t, 3, p.Cost)
}

// TestFindPath_ProgressFallback checks the first fallback tier ends short
// of an enclosed destination, as close as the obstacles allow.
func TestFindPath_ProgressFallback(t *testing.T) {
	g := openGrid(t, 6)
	origin, dest := core.Pt(0, 0), core.Pt(5, 5)
	wall(t, g, core.Pt(4, 5), core.Pt(5, 4))

	p, err := pathfind.FindPath(g, origin, dest, 20, mover.MustNew("u", 1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Partial)
	assert.False(t, p.Emergency)
	assert.NotEqual(t, dest, p.End(origin))
	assert.Equal(t, 2, core.Manhattan(p.End(origin), dest))
	assert.Equal(t, 8, p.Cost)
}

// TestFindPath_ClosestFallback checks the second tier returns the nearest
// explored tile when nothing makes progress.
func TestFindPath_ClosestFallback(t *testing.T) {
	g := openGrid(t, 5)
	wall(t, g, core.Pt(3, 2), core.Pt(2, 1), core.Pt(2, 3))
	origin, dest := core.Pt(2, 2), core.Pt(4, 2)

	p, err := pathfind.FindPath(g, origin, dest, 1, mover.MustNew("u", 1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Partial)
	assert.False(t, p.Emergency)
	assert.Equal(t, []core.Point{core.Pt(1, 2)}, p.Tiles())
	assert.Equal(t, 1, p.Cost)
}

// TestFindPath_EmergencyStep checks the single forced step and its
// direction order when the search is capped before exploring.
func TestFindPath_EmergencyStep(t *testing.T) {
	origin, dest := core.Pt(2, 2), core.Pt(4, 3)
	unit := mover.MustNew("u", 1)

	cases := []struct {
		name    string
		blocked []core.Point
		want    core.Point
	}{
		{"primary", nil, core.Pt(3, 2)},
		{"secondary", []core.Point{core.Pt(3, 2)}, core.Pt(2, 3)},
		{"reversed primary", []core.Point{core.Pt(3, 2), core.Pt(2, 3)}, core.Pt(1, 2)},
		{"reversed secondary", []core.Point{core.Pt(3, 2), core.Pt(2, 3), core.Pt(1, 2)}, core.Pt(2, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := openGrid(t, 5)
			wall(t, g, tc.blocked...)
			p, err := pathfind.FindPath(g, origin, dest, 5, unit, pathfind.WithMaxExpansions(1))
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.True(t, p.Partial)
			assert.True(t, p.Emergency)
			assert.Equal(t, []core.Point{tc.want}, p.Tiles())
			assert.Equal(t, 1, p.Cost)
		})
	}
}

// TestFindPath_EmergencyRespectsBudget checks a forced step never overspends.
func TestFindPath_EmergencyRespectsBudget(t *testing.T) {
	g := openGrid(t, 5)
	// East is water at move 3, over budget; south is open.
	require.NoError(t, g.SetTerrain(core.Pt(3, 2), terrain.Water))
	p, err := pathfind.FindPath(g, core.Pt(2, 2), core.Pt(4, 3), 2, mover.MustNew("u", 1), pathfind.WithMaxExpansions(1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Emergency)
	assert.Equal(t, []core.Point{core.Pt(2, 3)}, p.Tiles())
}

// TestFindPath_BudgetMonotonicity checks that more budget never makes an
// exact result heavier and never turns it partial.
func TestFindPath_BudgetMonotonicity(t *testing.T) {
	const n = 10
	r := rand.New(rand.NewSource(42))
	unit := mover.MustNew("m", 1)

	for trial := 0; trial < 15; trial++ {
		g := randomGrid(t, r, n, 12, 1)
		occ := core.NewOccupancy(g, unit.ID())
		origin := standable(r, occ, n, 1)
		dest := standable(r, occ, n, 1)

		var (
			seenExact bool
			last      float64
		)
		for budget := 0; budget <= 40; budget++ {
			p, err := pathfind.FindPath(g, origin, dest, budget, unit)
			require.NoError(t, err)
			if p == nil {
				require.False(t, seenExact, "trial %d budget %d lost its path", trial, budget)
				continue
			}
			require.LessOrEqual(t, p.Cost, budget)
			if p.Partial {
				require.False(t, seenExact, "trial %d budget %d demoted to partial", trial, budget)
				continue
			}
			if seenExact {
				require.LessOrEqual(t, p.Weight, last+1e-9, "trial %d budget %d", trial, budget)
			}
			seenExact, last = true, p.Weight
		}
	}
}

// TestFindPath_MultiTileSafety checks every step of every returned path
// keeps the full footprint in bounds and clear of other movers.
func TestFindPath_MultiTileSafety(t *testing.T) {
	const n = 14
	r := rand.New(rand.NewSource(11))
	model := terrain.DefaultModel()

	for trial := 0; trial < 30; trial++ {
		g := randomGrid(t, r, n, 10, 2)
		size := 2 + r.Intn(2)
		unit := mover.MustNew("big", size)
		occ := core.NewOccupancy(g, unit.ID())
		origin := standable(r, occ, n, size)
		dest := core.Pt(r.Intn(n), r.Intn(n))
		budget := r.Intn(25)

		p, err := pathfind.FindPath(g, origin, dest, budget, unit)
		require.NoError(t, err)
		if p == nil {
			continue
		}
		require.LessOrEqual(t, p.Cost, budget)
		require.Equal(t, -1, occ.ValidatePath(origin, p.Steps, size), "trial %d", trial)

		cost, weight := 0, 0.0
		for _, st := range p.Steps {
			for _, fp := range core.Footprint(st.Point, size) {
				require.True(t, core.InBounds(fp, n), "trial %d step %v", trial, st.Point)
				require.False(t, g.IsOccupied(fp.X, fp.Y, unit.ID()), "trial %d step %v", trial, st.Point)
			}
			require.Equal(t, g.TerrainAt(st.X, st.Y), st.Terrain)
			m, w := model.Cost(st.Terrain, unit)
			cost += m
			weight += w
		}
		assert.Equal(t, cost, p.Cost)
		assert.InDelta(t, weight, p.Weight, 1e-9)
	}
}

// TestFindPath_OwnFootprintIgnored checks a placed mover does not block itself.
func TestFindPath_OwnFootprintIgnored(t *testing.T) {
	g := openGrid(t, 5)
	require.NoError(t, g.Place(core.Occupant{ID: "ogre", Position: core.Pt(0, 0), Size: 2}))
	p, err := pathfind.FindPath(g, core.Pt(0, 0), core.Pt(1, 0), 3, mover.MustNew("ogre", 2))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Partial)
	assert.Equal(t, []core.Point{core.Pt(1, 0)}, p.Tiles())

	// A 2×2 anchor at (3,3) is the last legal column and row.
	p, err = pathfind.FindPath(g, core.Pt(0, 0), core.Pt(4, 4), 20, mover.MustNew("ogre", 2))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Partial)
	assert.Equal(t, core.Pt(3, 3), p.End(core.Pt(0, 0)))
}

// TestFindPath_WithConfig checks the cost table and penalty flow in.
func TestFindPath_WithConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("terrain:\n  open: {move: 2, weight: 1}\n"))
	require.NoError(t, err)

	g := openGrid(t, 4)
	p, err := pathfind.FindPath(g, core.Pt(0, 0), core.Pt(3, 0), 6, mover.MustNew("u", 1), pathfind.WithConfig(cfg))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.Partial)
	assert.Equal(t, 6, p.Cost)

	bad := config.Default()
	bad.Terrain = map[string]terrain.Cost{"lava": {Move: 1, Weight: 1}}
	_, err = pathfind.FindPath(g, core.Pt(0, 0), core.Pt(3, 0), 6, mover.MustNew("u", 1), pathfind.WithConfig(bad))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)
}
