package meals

import "errors"

var (
	ErrMealNotFound = errors.New("meal signup not found")
	// ErrAlreadyCancelled is a second cancel attempt. Deliberately an error
	// rather than a no-op so the token holder learns nothing changed.
	ErrAlreadyCancelled = errors.New("meal signup already cancelled")
	// ErrPickupUnavailable covers unknown, inactive and past-dated pickup
	// locations uniformly; callers cannot tell which.
	ErrPickupUnavailable = errors.New("invalid or inactive pickup location")
)
