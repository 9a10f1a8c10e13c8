package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tacmove/terrain"
)

// Sentinel errors for core battlefield operations.
var (
	// ErrEmptyGrid indicates the terrain input has no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

	// ErrNonSquare indicates the terrain input is not N×N.
	ErrNonSquare = errors.New("core: grid must be square")

	// ErrOutOfBounds indicates a position or footprint outside the grid.
	ErrOutOfBounds = errors.New("core: position out of bounds")

	// ErrEmptyOccupantID indicates an occupant with an empty ID.
	ErrEmptyOccupantID = errors.New("core: occupant ID is empty")

	// ErrBadFootprint indicates an occupant size below 1.
	ErrBadFootprint = errors.New("core: footprint size must be at least 1")

	// ErrDuplicateOccupant indicates an occupant ID that is already placed.
	ErrDuplicateOccupant = errors.New("core: occupant already placed")

	// ErrOccupantNotFound indicates an operation referenced an unknown occupant.
	ErrOccupantNotFound = errors.New("core: occupant not found")

	// ErrCollision indicates a footprint overlapping another occupant.
	ErrCollision = errors.New("core: footprint collides with another occupant")
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p moved by one step in d.
func (p Point) Add(d Direction) Point {
	off := d.Offset()
	return Point{X: p.X + off[0], Y: p.Y + off[1]}
}

// String renders "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal steps, or DirNone.
type Direction int8

const (
	DirNone Direction = iota - 1
	DirNorth
	DirEast
	DirSouth
	DirWest
)

// Dirs4 lists the four directions in N, E, S, W order.
var Dirs4 = [4]Direction{DirNorth, DirEast, DirSouth, DirWest}

var dirOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var dirNames = [4]string{"N", "E", "S", "W"}

// Offset returns the (dx, dy) of one step; DirNone yields (0, 0).
func (d Direction) Offset() [2]int {
	if d < DirNorth || d > DirWest {
		return [2]int{0, 0}
	}
	return dirOffsets[d]
}

// Opposite returns the reverse direction; DirNone stays DirNone.
func (d Direction) Opposite() Direction {
	if d < DirNorth || d > DirWest {
		return DirNone
	}
	return (d + 2) % 4
}

// String returns N, E, S, W or "-".
func (d Direction) String() string {
	if d < DirNorth || d > DirWest {
		return "-"
	}
	return dirNames[d]
}

// Occupant is another mover standing on the battlefield.
type Occupant struct {
	ID       string
	Position Point // top-left anchor
	Size     int   // footprint side length
	Team     string
}

// Covers reports whether p lies inside the occupant's footprint.
func (o Occupant) Covers(p Point) bool {
	return p.X >= o.Position.X && p.X < o.Position.X+o.Size &&
		p.Y >= o.Position.Y && p.Y < o.Position.Y+o.Size
}

// Battlefield is the read-only surface the planners consume.
// Implementations must be safe to read for the duration of one call.
//
// Planners read occupancy only through Occupants, which NewOccupancy
// snapshots once per call. IsOccupied serves point queries outside a
// planning call, such as rendering, and must agree with Occupants.
type Battlefield interface {
	// GridSize returns N for an N×N grid.
	GridSize() int
	// TerrainAt returns the terrain of an in-bounds tile.
	TerrainAt(x, y int) terrain.Type
	// IsOccupied reports whether any occupant other than excludeID covers (x,y).
	IsOccupied(x, y int, excludeID string) bool
	// Occupants lists every occupant with its anchor and footprint.
	Occupants() []Occupant
}

// InBounds reports whether p lies on an n×n grid.
func InBounds(p Point, n int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < n && p.Y < n
}

// Footprint enumerates the size×size tiles anchored at anchor, row by row.
func Footprint(anchor Point, size int) []Point {
	out := make([]Point, 0, size*size)
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			out = append(out, Point{X: anchor.X + dx, Y: anchor.Y + dy})
		}
	}
	return out
}

// Index maps p to its row-major index on an n×n grid.
// Panics when p is outside the grid.
func Index(p Point, n int) int {
	if !InBounds(p, n) {
		panic(fmt.Sprintf("core: index %v outside %dx%d grid", p, n, n))
	}
	return p.Y*n + p.X
}

// Coordinate converts a row-major index back to a Point.
// Panics when idx is outside the grid.
func Coordinate(idx, n int) Point {
	if idx < 0 || idx >= n*n {
		panic(fmt.Sprintf("core: index %d outside %dx%d grid", idx, n, n))
	}
	return Point{X: idx % n, Y: idx / n}
}
