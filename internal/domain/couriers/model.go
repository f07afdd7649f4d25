package couriers

import (
	"time"

	"github.com/lib/pq"
)

// Courier is a volunteer assigned to one or more hubs. The hub set is
// denormalized into a text[] column and matched per request; nothing ties a
// courier to individual signups.
type Courier struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"not null"`
	Email     string         `gorm:"not null"`
	Phone     string         `gorm:"not null"`
	Locations pq.StringArray `gorm:"type:text[];not null"`
	Active    bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

type CreateCourierInput struct {
	Name      string
	Email     string
	Phone     string
	Locations []string
}

type UpdateCourierInput struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Locations []string
	Active    *bool
}
