package pickups

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Pickup, error)
	ListAvailable(ctx context.Context, from time.Time) ([]Pickup, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]Pickup, error)
	GetByID(ctx context.Context, id string) (*Pickup, error)
	FindByDateLocation(ctx context.Context, date time.Time, location string) (*Pickup, error)
	Create(ctx context.Context, pickup *Pickup) error
	Update(ctx context.Context, pickup *Pickup) error
	Deactivate(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountSignups(ctx context.Context, id string) (int64, error)
	DeleteUnreferenced(ctx context.Context) ([]Pickup, error)
}
