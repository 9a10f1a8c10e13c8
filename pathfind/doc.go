// Package pathfind plans a single cost-bounded route for a square-footprint
// mover across a battlefield grid.
//
// Overview:
//
//   - FindPath runs A* from origin to destination. The heuristic is a flow
//     field built for the destination (package flowfield), which already
//     accounts for detours around heavy terrain. Where the field marks a tile
//     unreachable the heuristic falls back to Manhattan distance scaled by
//     UnreachablePenalty, so such tiles are deprioritised but not excluded.
//   - Every step deducts the terrain's budget cost (Move) from the remaining
//     budget and adds its search weight to the path weight. A step is only
//     taken when Move ≤ remaining budget and the mover's full size×size
//     footprint at the new anchor is in bounds and free of other movers.
//   - The open set is a binary heap keyed by f = g + h. Each tile keeps a set
//     of Pareto labels (weight, remaining budget); a new arrival dominated by
//     an existing label (no lighter and no richer) is dropped.
//   - When the destination is popped its whole path is re-validated; a path
//     that fails is discarded and the search continues.
//
// Fallback tiers, used only when no validated exact path exists:
//
//  1. The explored tile with the greatest Manhattan progress toward the
//     destination relative to the origin (ties: lowest weight). Partial.
//  2. Otherwise the explored tile closest to the destination. Partial.
//  3. Otherwise a single emergency step: primary axis toward the
//     destination, then the secondary axis, then both reversed; the first
//     legal, affordable one wins. Partial and Emergency. In practice this
//     tier only fires when WithMaxExpansions stopped the search before it
//     expanded anything beyond the origin.
//  4. Otherwise nil: no movement is possible this decision.
//
// Results:
//
//   - (*core.Path, nil) on success, exact or fallback.
//   - (nil, nil) when no legal move exists or the destination is off the grid.
//   - (nil, err) for invalid input.
//
// Errors:
//
//   - ErrNilBattlefield:    bf is nil.
//   - ErrNilMover:          mover is nil.
//   - ErrOptionViolation:   an option was given an invalid value.
//   - ErrNegativeBudget:    budget < 0.
//   - ErrOriginOutOfBounds: origin outside the grid.
//
// Complexity:
//
//   - Flow field: O(N² log N).
//   - Search: O(L log L) where L ≤ N²·(budget+1) labels; in practice close to
//     the number of tiles within budget of the origin.
package pathfind
