// Package mover describes the units that move across a battlefield grid.
//
// What:
//
//   - Mover carries an ID, a square footprint Size anchored at its top-left
//     tile, and the traits that change how terrain treats it: flight,
//     element affinities, element immunities and active condition tags.
//   - Traits are resolved once by New into fixed bitsets, so cost lookups
//     during a search are plain bit tests.
//
// Why:
//
//   - The terrain cost model is queried for every tile a search touches.
//     Keeping the trait surface closed and precomputed keeps those queries
//     O(1) and free of map lookups.
//
// Errors:
//
//   - ErrEmptyID:    mover ID is the empty string.
//   - ErrBadSize:    footprint size is below 1.
//   - ErrBadElement: an element outside the known set was supplied.
//   - ErrBadCondition: a condition outside the known set was supplied.
package mover
