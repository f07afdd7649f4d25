// Package locations holds the fixed pickup-hub registry and the
// allow-listed signup dates. The registry is immutable; there is no
// runtime mutation path.
package locations

import "time"

const (
	Portland   = "Portland"
	I5Corridor = "I5 Corridor"
	Salem      = "Salem"
	Eugene     = "Eugene"
)

type Info struct {
	Name        string
	Address     string
	City        string
	FullAddress string
	Note        string
}

var registry = map[string]Info{
	Portland: {
		Name:        "Jantzen Beach Target",
		Address:     "1555 N Tomahawk Island Dr",
		City:        "Portland, OR 97217",
		FullAddress: "Jantzen Beach Target\n1555 N Tomahawk Island Dr\nPortland, OR 97217",
	},
	I5Corridor: {
		Name:        "I5 Corridor",
		Address:     "Between Portland and Eugene",
		FullAddress: "Between Portland and Eugene",
		Note:        "Message courier to set location",
	},
	Salem: {
		Name:        "Public Service Building",
		Address:     "255 Capitol St NE",
		City:        "Salem, OR 97310",
		FullAddress: "Public Service Building\n255 Capitol St NE\nSalem, OR 97310",
	},
	Eugene: {
		Name:        "Self Delivery",
		Address:     "Will deliver my own meal",
		FullAddress: "Will deliver my own meal - no courier needed",
		Note:        "No courier needed",
	},
}

var orderedKeys = []string{Portland, I5Corridor, Salem, Eugene}

// AllowedDates are the only dates the seeding utility will create pickup
// locations for (December 2025 weekends).
var AllowedDates = []string{
	"2025-12-06",
	"2025-12-07",
	"2025-12-13",
	"2025-12-14",
	"2025-12-20",
	"2025-12-21",
}

func Keys() []string {
	keys := make([]string, len(orderedKeys))
	copy(keys, orderedKeys)
	return keys
}

func IsValid(key string) bool {
	_, ok := registry[key]
	return ok
}

func Get(key string) (Info, bool) {
	info, ok := registry[key]
	return info, ok
}

// DisplayText renders a one-line description of a hub for listings.
// Unknown keys pass through unchanged.
func DisplayText(key string) string {
	info, ok := registry[key]
	if !ok {
		return key
	}

	text := info.Name + " - " + info.Address
	if info.City != "" {
		text += ", " + info.City
	}
	if info.Note != "" {
		text += " (" + info.Note + ")"
	}
	return text
}

// Address returns the multi-line address block for a hub, or the key itself
// when unknown.
func Address(key string) string {
	info, ok := registry[key]
	if !ok {
		return key
	}
	return info.FullAddress
}

// ParseAllowedDates returns AllowedDates as midnight-UTC times. The list is
// validated by tests, so a malformed entry is a programmer error.
func ParseAllowedDates() []time.Time {
	dates := make([]time.Time, 0, len(AllowedDates))
	for _, raw := range AllowedDates {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			panic("locations: bad allowed date " + raw)
		}
		dates = append(dates, parsed)
	}
	return dates
}
