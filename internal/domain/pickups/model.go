package pickups

import "time"

// Pickup is one (date, hub) slot that meals can be signed up against.
// Dates are stored at midnight UTC.
type Pickup struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	PickupDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_pickup_date_location"`
	Location   string    `gorm:"not null;uniqueIndex:idx_pickup_date_location"`
	Active     bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Pickup) TableName() string { return "pickup_locations" }

type CreatePickupInput struct {
	PickupDate time.Time
	Location   string
}

type UpdatePickupInput struct {
	ID         string
	PickupDate time.Time
	Location   string
	Active     *bool
}

// SeedResult reports what happened to one (date, location) pair during
// seeding.
type SeedResult struct {
	Action     string
	ID         string
	PickupDate time.Time
	Location   string
}

const (
	SeedCreated = "created"
	SeedExists  = "exists"
)

// DeleteOutcome tells the caller whether the row was removed or merely
// deactivated because signups still reference it.
type DeleteOutcome struct {
	Deactivated bool
}
