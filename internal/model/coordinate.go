package model

import "fmt"

// Coordinate identifies a cell on a grid
type Coordinate struct {
	X int // 0-indexed row
	Y int // 0-indexed column
}

// Add returns the coordinate offset by dx rows and dy columns
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String renders the coordinate 1-based, the way players enter it
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X+1, c.Y+1)
}
