package model

import "context"

// Actor chooses where to fire on the opposing grid each turn
type Actor interface {
	// SelectTarget returns the coordinate to shoot at. An error means the
	// actor can no longer play (e.g. its input source is closed).
	SelectTarget(ctx context.Context, target *Grid) (Coordinate, error)
}
