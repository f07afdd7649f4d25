package notify

import "time"

// FormatDate renders a pickup date the way it appears in email bodies and
// subjects, e.g. "December 6, 2025".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDateDisplay includes the weekday, e.g. "Saturday, December 6, 2025".
func FormatDateDisplay(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
