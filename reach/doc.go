// Package reach enumerates every tile a mover can reach this decision and
// how it would get there.
//
// What
//
//   - From walks the grid breadth-first from the origin, spending the
//     terrain's movement cost on each tile entered.
//   - A neighbour is admitted only when the mover's full footprint fits
//     there without touching another mover, and its cost does not exceed
//     the budget left at that point.
//   - A tile is never re-expanded by an arrival that has no more budget left
//     than an earlier one, which bounds the walk to a handful of useful
//     visits per tile.
//   - Each reachable tile (the origin excluded) is reported once, with the
//     arrival that leaves the most budget, ties going to the lower search
//     weight.
//
// Why
//
//   - Callers choosing between movement options (advance, retreat, flank)
//     need the whole menu with costs, not a single route.
//
// Determinism
//
//	Neighbours are tried in N, E, S, W order and the result is sorted by
//	(TotalCost, Y, X), so identical inputs give identical output.
//
// Complexity (N = grid side, B = budget)
//
//   - Time:   O(N²·B) worst case; O(tiles within budget) in practice.
//   - Memory: O(N²).
//
// Errors
//
//   - ErrNilBattlefield, ErrNilMover, ErrOptionViolation,
//     ErrNegativeBudget, ErrOriginOutOfBounds.
package reach
