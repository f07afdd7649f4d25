package pickups

import "errors"

var (
	ErrPickupNotFound = errors.New("pickup location not found")
	ErrPickupConflict = errors.New("pickup location already exists for this date and location")
)
