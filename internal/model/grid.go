package model

import (
	"fmt"
	"strings"
)

// CellState is what a single grid cell currently shows
type CellState uint8

const (
	CellEmpty    CellState = iota // Open water
	CellOccupied                  // Part of an intact vessel
	CellHit                       // Part of a vessel that has been hit
	CellMiss                      // Shot that found open water
	CellBlocked                   // Revealed as empty around a sunk vessel
)

// Glyph returns the rendering of a cell state
func (s CellState) Glyph() string {
	switch s {
	case CellOccupied:
		return "■"
	case CellHit:
		return "X"
	case CellMiss:
		return "T"
	case CellBlocked:
		return "."
	default:
		return "~"
	}
}

// ShotOutcome is the result of a resolved shot
type ShotOutcome string

const (
	ShotMiss ShotOutcome = "miss"
	ShotHit  ShotOutcome = "hit"
	ShotSunk ShotOutcome = "sunk"
)

// RetainsTurn returns true if the shooter keeps the turn after this outcome
func (o ShotOutcome) RetainsTurn() bool {
	return o == ShotHit || o == ShotSunk
}

// neighbourhood is the cell itself plus its 8 surrounding offsets
var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type coordSet map[Coordinate]struct{}

func (s coordSet) has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

func (s coordSet) add(c Coordinate) {
	s[c] = struct{}{}
}

// Grid is one side's board: the cell matrix plus placement and shot bookkeeping
type Grid struct {
	// Hidden renders vessel cells as open water. Display only.
	Hidden bool

	size        int
	cells       [][]CellState // Row-major: cells[x][y]
	vessels     []*Vessel
	occupied    coordSet
	reserved    coordSet // adjacency blocked during fleet generation
	targeted    coordSet
	vesselCount int
}

// NewGrid creates an empty grid of the given size
func NewGrid(size int, hidden bool) *Grid {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &Grid{
		Hidden:   hidden,
		size:     size,
		cells:    cells,
		occupied: make(coordSet),
		reserved: make(coordSet),
		targeted: make(coordSet),
	}
}

// Size returns the grid dimension
func (g *Grid) Size() int {
	return g.size
}

// IsOutOfBounds returns true if either component lies outside [0, size)
func (g *Grid) IsOutOfBounds(c Coordinate) bool {
	return c.X < 0 || c.X >= g.size || c.Y < 0 || c.Y >= g.size
}

// Cell returns the state of the cell at c, or CellEmpty when out of bounds
func (g *Grid) Cell(c Coordinate) CellState {
	if g.IsOutOfBounds(c) {
		return CellEmpty
	}
	return g.cells[c.X][c.Y]
}

func (g *Grid) set(c Coordinate, state CellState) {
	g.cells[c.X][c.Y] = state
}

// Vessels returns the placed vessels in placement order
func (g *Grid) Vessels() []*Vessel {
	result := make([]*Vessel, len(g.vessels))
	copy(result, g.vessels)
	return result
}

// VesselCount returns the number of vessels still afloat
func (g *Grid) VesselCount() int {
	return g.vesselCount
}

// IsOccupied returns true if c is unavailable for placement or reveal
func (g *Grid) IsOccupied(c Coordinate) bool {
	return g.occupied.has(c)
}

// IsTargeted returns true if a shot has already been resolved at c
func (g *Grid) IsTargeted(c Coordinate) bool {
	return g.targeted.has(c)
}

// TargetedCount returns how many cells can no longer be shot at
func (g *Grid) TargetedCount() int {
	return len(g.targeted)
}

// CountCells returns the number of cells in the given state
func (g *Grid) CountCells(state CellState) int {
	count := 0
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] == state {
				count++
			}
		}
	}
	return count
}

// PlaceVessel adds a vessel to the grid. The grid is left untouched on error.
func (g *Grid) PlaceVessel(v *Vessel) error {
	cells := v.Cells()
	for _, c := range cells {
		if g.IsOutOfBounds(c) {
			return ErrVesselOutOfBounds
		}
	}
	for _, c := range cells {
		if g.occupied.has(c) || g.reserved.has(c) {
			return ErrVesselCollision
		}
	}

	for _, c := range cells {
		g.set(c, CellOccupied)
		g.occupied.add(c)
	}
	g.vessels = append(g.vessels, v)
	g.vesselCount++
	return nil
}

// BlockAdjacency marks every in-bounds cell touching v, diagonals included,
// as unavailable. With reveal unset the cells are only reserved so later
// placements cannot touch v. With reveal set they are also shown as blocked
// and become untargetable.
func (g *Grid) BlockAdjacency(v *Vessel, reveal bool) {
	for _, cell := range v.Cells() {
		for _, off := range neighbourhood {
			c := cell.Add(off[0], off[1])
			if g.IsOutOfBounds(c) || g.occupied.has(c) {
				continue
			}
			if !reveal {
				g.reserved.add(c)
				continue
			}
			g.occupied.add(c)
			g.targeted.add(c)
			g.set(c, CellBlocked)
		}
	}
}

// ClearReserved drops the adjacency reservations made during fleet generation
func (g *Grid) ClearReserved() {
	g.reserved = make(coordSet)
}

// ResolveShot fires at c and reports what it found
func (g *Grid) ResolveShot(c Coordinate) (ShotOutcome, error) {
	if g.IsOutOfBounds(c) {
		return "", ErrShotOutOfBounds
	}
	if g.targeted.has(c) {
		return "", ErrAlreadyTargeted
	}

	g.occupied.add(c)
	g.targeted.add(c)

	for _, v := range g.vessels {
		if !v.Covers(c) {
			continue
		}
		g.set(c, CellHit)
		v.takeHit()
		if v.Sunk() {
			g.vesselCount--
			g.BlockAdjacency(v, true)
			return ShotSunk, nil
		}
		return ShotHit, nil
	}

	g.set(c, CellMiss)
	return ShotMiss, nil
}

// Render returns the grid as text with 1-based row and column headers
func (g *Grid) Render() string {
	var sb strings.Builder

	sb.WriteString("  |")
	for y := 0; y < g.size; y++ {
		fmt.Fprintf(&sb, " %d |", y+1)
	}

	for x := 0; x < g.size; x++ {
		fmt.Fprintf(&sb, "\n%d |", x+1)
		for y := 0; y < g.size; y++ {
			fmt.Fprintf(&sb, " %s |", g.glyphAt(x, y))
		}
	}

	return sb.String()
}

// Rows returns the rendered glyphs row by row
func (g *Grid) Rows() [][]string {
	rows := make([][]string, g.size)
	for x := 0; x < g.size; x++ {
		rows[x] = make([]string, g.size)
		for y := 0; y < g.size; y++ {
			rows[x][y] = g.glyphAt(x, y)
		}
	}
	return rows
}

func (g *Grid) glyphAt(x, y int) string {
	state := g.cells[x][y]
	if g.Hidden && state == CellOccupied {
		state = CellEmpty
	}
	return state.Glyph()
}
