package domain

import (
	"fmt"
	"time"
)

const expiryLayout = "2006-01-02 15:04:05"

const day = 24 * time.Hour

type Expiry struct {
	At time.Time
	// ShowZone appends the zone abbreviation when the API supplied one.
	ShowZone bool
}

func (e Expiry) Format() string {
	if e.ShowZone {
		return e.At.Format(expiryLayout + " MST")
	}

	return e.At.Format(expiryLayout)
}

// DaysUntil returns the whole days from now to the expiry, rounded down.
// An account that expired an hour ago is at -1.
func (e Expiry) DaysUntil(now time.Time) int {
	delta := e.At.Sub(now)
	days := int(delta / day)
	if delta < 0 && delta%day != 0 {
		days--
	}

	return days
}

func DaysLabel(days int) string {
	if days == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", days)
}
