// Package core_test verifies thread-safety of core.Grid under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tacmove/core"
	"github.com/katalvlaran/tacmove/terrain"
)

// TestConcurrentPlace ensures concurrent Place calls on disjoint tiles
// are safe and every occupant lands.
func TestConcurrentPlace(t *testing.T) {
	const n = 16
	g, err := core.NewUniformGrid(n, terrain.Open)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(n * n)
	for i := 0; i < n*n; i++ {
		go func(i int) {
			defer wg.Done()
			p := core.Coordinate(i, n)
			assert.NoError(t, g.Place(core.Occupant{ID: fmt.Sprintf("u%d", i), Position: p, Size: 1}))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Occupants(), n*n)
	assert.Equal(t, n*n, core.NewOccupancy(g, "").CoveredCount())
}

// TestConcurrentPlaceCollision races two movers for the same tile; exactly
// one must win.
func TestConcurrentPlaceCollision(t *testing.T) {
	for round := 0; round < 50; round++ {
		g, _ := core.NewUniformGrid(4, terrain.Open)
		errs := make([]error, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		for i := 0; i < 2; i++ {
			go func(i int) {
				defer wg.Done()
				errs[i] = g.Place(core.Occupant{ID: fmt.Sprintf("m%d", i), Position: core.Pt(1, 1), Size: 2})
			}(i)
		}
		wg.Wait()

		failed := 0
		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, core.ErrCollision)
				failed++
			}
		}
		assert.Equal(t, 1, failed, "round %d", round)
		assert.Len(t, g.Occupants(), 1)
	}
}

// TestConcurrentRelocateAndSnapshot mixes Relocate, Remove and Place with
// readers taking occupancy snapshots and clones.
func TestConcurrentRelocateAndSnapshot(t *testing.T) {
	g, _ := core.NewUniformGrid(8, terrain.Open)
	require.NoError(t, g.Place(core.Occupant{ID: "u", Position: core.Pt(0, 0), Size: 1}))

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for j := 0; j < rounds; j++ {
			_ = g.Relocate("u", core.Pt(j%8, j%3))
			_ = g.SetTerrain(core.Pt(j%8, 7), terrain.Bog)
		}
	}()
	go func() {
		defer wg.Done()
		for j := 0; j < rounds; j++ {
			id := fmt.Sprintf("t%d", j)
			if g.Place(core.Occupant{ID: id, Position: core.Pt(j%8, 5), Size: 1}) == nil {
				_ = g.Remove(id)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for j := 0; j < rounds; j++ {
			occ := core.NewOccupancy(g, "")
			_ = occ.CanStand(core.Pt(j%7, j%7), 2)
			c := g.Clone()
			_ = c.Occupants()
			_ = g.IsOccupied(j%8, j%8, "")
		}
	}()
	wg.Wait()

	_, ok := g.Occupant("u")
	assert.True(t, ok)
}
