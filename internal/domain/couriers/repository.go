package couriers

import "context"

type Repository interface {
	List(ctx context.Context) ([]Courier, error)
	ListActiveByLocation(ctx context.Context, location string) ([]Courier, error)
	GetByID(ctx context.Context, id string) (*Courier, error)
	Create(ctx context.Context, courier *Courier) error
	Update(ctx context.Context, courier *Courier) error
	Delete(ctx context.Context, id string) (bool, error)
}
