// Package flowfield builds grid-wide shortest-path maps toward one
// destination tile, used as the A* heuristic by package pathfind.
//
// Overview:
//
//   - Build runs Dijkstra backward from the destination over 4-connected
//     neighbours. The edge metric is the search weight (not the budget cost)
//     of the tile being entered on the way toward the destination, as given
//     by terrain.Model for the routed mover.
//   - Every tile records the minimal accumulated weight and the direction of
//     the neighbour achieving it: from any tile, stepping that way approaches
//     the destination most cheaply.
//   - Tiles covered by another mover's footprint are skipped. This is a
//     tile-level approximation that ignores the routed mover's own footprint;
//     it only guides search, the pathfinder enforces exact footprints.
//   - Unreachable tiles keep weight +Inf and DirNone.
//
// Why not Manhattan distance:
//
//   - With sharply varying terrain weights (a wide fire field between mover
//     and goal) Manhattan distance points straight into the expensive region.
//     The flow field already accounts for detours, at O(N² log N) per
//     destination.
//
// Invariant:
//
//   - For every finite-weight tile T ≠ destination, the neighbour in
//     Direction(T) has strictly smaller weight, so following directions
//     always terminates at the destination without cycles.
//
// Complexity:
//
//   - Time:  O(N² log N) with a lazy-decrease-key binary heap.
//   - Space: O(N²).
//
// Errors:
//
//   - ErrNilBattlefield:         bf is nil.
//   - ErrNilMover:               mover is nil.
//   - ErrDestinationOutOfBounds: destination outside the grid.
//
// Example:
//
//	field, err := flowfield.Build(grid, core.Pt(9, 9), unit)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(field.Weight(core.Pt(0, 0)), field.Direction(core.Pt(0, 0)))
package flowfield
