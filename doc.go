// Package tacmove plans movement for units on a square tactical grid.
//
// What is in the box?
//
//	A headless, turn-based movement planner that answers two questions for
//	one unit at a time:
//		• How do I get from here to there this turn?   (pathfind)
//		• Where can I get to at all this turn?         (reach)
//
// Everything is organized under small packages, leaf-first:
//
//	mover/      unit traits: footprint size, flight, element affinities,
//	            immunities and active conditions, resolved at construction
//	terrain/    terrain types and the cost model (budget cost vs search weight)
//	core/       points, directions, the Battlefield interface, an in-memory
//	            Grid, occupancy snapshots and footprint validation, Path
//	flowfield/  Dijkstra from a destination over the whole grid
//	pathfind/   A* guided by the flow field, with tiered fallbacks
//	reach/      breadth-first enumeration of every affordable tile
//	config/     YAML tuning: log level, heuristic penalty, terrain table
//	logger/     shared logrus logger with per-component entries
//
// Two costs per tile:
//
//	Move   : integer points deducted from the unit's budget.
//	Weight : search preference; heavy tiles (fire, toxic) are avoided while
//	         a lighter route exists, but remain usable when they are the
//	         only way through.
//
// Quick ASCII example (# = another unit, F = fire, S/D = start/destination):
//
//	    . . # . .
//	    . . # . .
//	    S . F . D
//	    . . # . .
//	    . . # . .
//
//	The only gap is the fire tile, so the planner walks through it.
//
// Every call is synchronous, keeps its search state local, and never
// mutates the battlefield.
package tacmove
