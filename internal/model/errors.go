package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrVesselOutOfBounds = errors.New("vessel does not fit on the grid")
	ErrVesselCollision   = errors.New("vessel overlaps or touches another vessel")

	// Fleet errors
	ErrFleetGenerationExhausted = errors.New("fleet generation exhausted its placement retries")

	// Shot errors
	ErrShotOutOfBounds = errors.New("shot is outside the grid")
	ErrAlreadyTargeted = errors.New("cell has already been targeted")

	// Match errors
	ErrMatchComplete = errors.New("match is already complete")
	ErrMatchNotFound = errors.New("match not found")
)

// IsShotError returns true for errors that reject a shot without ending the match
func IsShotError(err error) bool {
	return errors.Is(err, ErrShotOutOfBounds) || errors.Is(err, ErrAlreadyTargeted)
}
