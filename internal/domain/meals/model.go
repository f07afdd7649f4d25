package meals

import "time"

// Signup is a provider's commitment to deliver one meal to a pickup
// location. It is created through the public form and mutated exactly once,
// when the token holder cancels it.
type Signup struct {
	ID                string `gorm:"type:uuid;primaryKey"`
	PickupLocationID  string `gorm:"type:uuid;index;not null"`
	Name              string `gorm:"not null"`
	Phone             string `gorm:"not null"`
	Email             string `gorm:"not null"`
	MealDescription   string `gorm:"not null"`
	FreezerFriendly   bool   `gorm:"not null;default:false"`
	NoteToCourier     *string
	CanBringToSalem   bool   `gorm:"not null;default:false"`
	CancellationToken string `gorm:"type:uuid;uniqueIndex;not null"`
	CancelledAt       *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (Signup) TableName() string { return "meal_signups" }

func (s *Signup) Cancelled() bool { return s.CancelledAt != nil }

// SignupWithPickup is a signup joined with its pickup location's date and
// hub key. Kept flat so query results scan directly into it.
type SignupWithPickup struct {
	ID               string
	PickupLocationID string
	Name             string
	Phone            string
	Email            string
	MealDescription  string
	FreezerFriendly  bool
	NoteToCourier    *string
	CanBringToSalem  bool
	CancelledAt      *time.Time
	CreatedAt        time.Time
	PickupDate       time.Time
	Location         string
}

func (s *SignupWithPickup) Cancelled() bool { return s.CancelledAt != nil }

// StatusFilter selects signups by cancellation state at the query layer.
type StatusFilter string

const (
	StatusActive    StatusFilter = "active"
	StatusCancelled StatusFilter = "cancelled"
	StatusAll       StatusFilter = "all"
)

// ListFilter narrows the admin signup listing. Zero values mean no filtering
// on that axis.
type ListFilter struct {
	Location string
	Status   StatusFilter
}

type CreateSignupInput struct {
	Name             string
	Phone            string
	Email            string
	PickupLocationID string
	MealDescription  string
	FreezerFriendly  bool
	NoteToCourier    string
	CanBringToSalem  bool
}

type SignupResult struct {
	MealID  string
	Message string
}

// CancellationSummary is what the token holder sees before confirming.
type CancellationSummary struct {
	ID               string
	Name             string
	MealDescription  string
	PickupDate       time.Time
	Location         string
	AlreadyCancelled bool
}
