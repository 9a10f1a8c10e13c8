// Package core defines the battlefield surface shared by every planner:
// tile coordinates, directions, occupants, the Battlefield interface,
// occupancy snapshots with footprint validation, and the Path result type.
//
// 🚀 What is core?
//
//	The leaf package the planners build on:
//		• Point / Direction – integer tile coordinates and the four orthogonal steps
//		• Battlefield       – the read-only view planners consume (size, terrain, occupants)
//		• Grid              – a thread-safe in-memory Battlefield
//		• Occupancy         – per-request snapshot of tiles covered by other movers
//		• Path / Step       – planner output, origin exclusive, end tile inclusive
//
// Footprints:
//
//	A mover of size k anchored at (x,y) covers every tile (x+i, y+j) with
//	0 ≤ i,j < k. It may stand there only when all k×k tiles are in bounds
//	and none is covered by another mover's footprint:
//
//	    a a . .      anchor (0,0), size 2
//	    a a . .
//	    . . b .      occupant b at (2,2), size 1
//	    . . . .
//
// Concurrency:
//
//	Grid guards its state with a sync.RWMutex, so collaborators may mutate it
//	between planning calls. Occupancy is an immutable snapshot taken once per
//	call; planners never mutate the battlefield.
//
// Errors:
//
//	ErrEmptyGrid         - terrain input has no rows.
//	ErrNonSquare         - terrain input is not N×N.
//	ErrOutOfBounds       - a position or footprint leaves the grid.
//	ErrEmptyOccupantID   - occupant ID is empty.
//	ErrBadFootprint      - occupant size below 1.
//	ErrDuplicateOccupant - occupant ID already placed.
//	ErrOccupantNotFound  - occupant ID unknown.
//	ErrCollision         - footprint overlaps another occupant.
//
// Invariant violations (an index computed outside the grid) are programming
// defects and panic instead of returning an error.
package core
