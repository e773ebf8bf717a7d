package services

import (
	"math"
	"time"
)

// The date range guard enforces the booking calendar policy: check-in may not
// be before today, and check-out must be strictly after check-in. It is pure
// and holds no state; both the booking form and the search-by-date endpoint
// share it.

// EarliestAllowedDate returns the caller's current calendar day at midnight,
// the floor for any check-in value.
func EarliestAllowedDate(now time.Time) time.Time {
	return atMidnight(now)
}

// MinimumCheckoutFor returns check-in plus exactly one calendar day. AddDate
// carries month, year and leap boundaries.
func MinimumCheckoutFor(checkIn time.Time) time.Time {
	return atMidnight(checkIn).AddDate(0, 0, 1)
}

// ValidateRange rejects past check-ins before it looks at ordering, so a
// request that is wrong both ways reports the past check-in. Only calendar
// days are compared; the time of day and the zone of each value are ignored.
func ValidateRange(checkIn, checkOut, today time.Time) error {
	if atMidnight(checkIn).Before(atMidnight(today)) {
		return ErrPastCheckIn
	}
	if !atMidnight(checkOut).After(atMidnight(checkIn)) {
		return ErrInvertedRange
	}
	return nil
}

// Nights counts whole nights in [checkIn, checkOut). Always positive for a
// range that passed ValidateRange.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(atMidnight(checkOut).Sub(atMidnight(checkIn)).Hours() / 24))
}

// atMidnight floors t to its own calendar day, pinned to UTC. Request dates
// parse as UTC midnights while the server clock runs in the local zone;
// pinning both sides keeps the comparison a pure calendar-day one.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
