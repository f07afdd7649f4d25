package meals

import (
	"context"
	"time"
)

// Repository persists signups. CreateSignup assigns the row ID and the
// cancellation token; callers never supply either.
type Repository interface {
	CreateSignup(ctx context.Context, signup *Signup) error
	GetByToken(ctx context.Context, token string) (*SignupWithPickup, error)
	// MarkCancelled sets the cancellation timestamp; it reports false when
	// the row was already cancelled or missing.
	MarkCancelled(ctx context.Context, id string, at time.Time) (bool, error)
	CountActive(ctx context.Context, pickupLocationID string) (int64, error)
	ListActiveByPickup(ctx context.Context, pickupLocationID string) ([]Signup, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]SignupWithPickup, error)
	List(ctx context.Context, filter ListFilter) ([]SignupWithPickup, error)
	Delete(ctx context.Context, id string) (bool, error)
}
