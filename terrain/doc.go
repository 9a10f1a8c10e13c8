// Package terrain maps terrain types and mover traits to movement costs.
//
// What:
//
//   - Type is the closed set of tile terrains (Open, Difficult, Fire, Frost,
//     Water, Elevated, Bog, Toxic).
//   - Cost pairs a budget cost (Move, integer ≥ 1) with a search-preference
//     penalty (Weight, real > 0).
//   - Model answers Cost(terrain, mover) for the planners.
//
// Why two numbers:
//
//   - Move is what the mover pays from its movement budget.
//   - Weight only biases search preference. Fire costs 2 budget points but
//     weighs 20, so a route around it wins whenever one exists, and the fire
//     tile is still used when it is the only way through.
//
// Rules applied by Model.Cost, in order:
//
//  1. A flying mover pays (1, 1) everywhere.
//  2. A hazardous terrain whose element matches an affinity or immunity of
//     the mover, or whose condition the mover already carries, costs the
//     same as Open.
//  3. Otherwise the table entry for the terrain.
//
// Errors:
//
//   - ErrBadCost:      Move < 1 or Weight ≤ 0 in a table entry.
//   - ErrUnknownType:  terrain name not recognised by ParseType.
//
// Model is immutable after NewModel and safe for concurrent use.
package terrain
