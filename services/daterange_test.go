package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DrewGalowayDev/AIRBNB/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateRange(t *testing.T) {
	today := date(2025, time.March, 10)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{"valid range", date(2025, time.March, 10), date(2025, time.March, 13), nil},
		{"single night", date(2025, time.March, 15), date(2025, time.March, 16), nil},
		{"checkout equals checkin", date(2025, time.March, 12), date(2025, time.March, 12), services.ErrInvertedRange},
		{"checkout before checkin", date(2025, time.March, 15), date(2025, time.March, 12), services.ErrInvertedRange},
		{"checkin in the past", date(2025, time.March, 9), date(2025, time.March, 13), services.ErrPastCheckIn},
		// A range wrong both ways reports the past check-in first.
		{"past and inverted", date(2025, time.March, 5), date(2025, time.March, 4), services.ErrPastCheckIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateRange(tt.checkIn, tt.checkOut, today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRange_IgnoresTimeOfDay(t *testing.T) {
	// A check-in later today is not "in the past" even when the clock has
	// already moved past the submitted instant.
	today := time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := date(2025, time.March, 12)

	assert.NoError(t, services.ValidateRange(checkIn, checkOut, today))
}

func TestValidateRange_ComparesCalendarDaysAcrossZones(t *testing.T) {
	// Request dates parse as UTC midnights, but the server clock may run in a
	// zone west of UTC. A same-day check-in must still be accepted there.
	newYork := time.FixedZone("America/New_York", -5*60*60)
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, newYork)
	checkIn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	checkOut := date(2025, time.March, 12)

	assert.NoError(t, services.ValidateRange(checkIn, checkOut, services.EarliestAllowedDate(today)))

	// And east of UTC.
	nairobi := time.FixedZone("Africa/Nairobi", 3*60*60)
	today = time.Date(2025, time.March, 10, 9, 0, 0, 0, nairobi)
	assert.NoError(t, services.ValidateRange(checkIn, checkOut, services.EarliestAllowedDate(today)))
}

func TestMinimumCheckoutFor(t *testing.T) {
	tests := []struct {
		name    string
		checkIn time.Time
		want    time.Time
	}{
		{"plain day", date(2025, time.March, 10), date(2025, time.March, 11)},
		{"month boundary", date(2025, time.April, 30), date(2025, time.May, 1)},
		{"year boundary", date(2025, time.December, 31), date(2026, time.January, 1)},
		{"leap february", date(2024, time.February, 29), date(2024, time.March, 1)},
		{"non-leap february", date(2025, time.February, 28), date(2025, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.MinimumCheckoutFor(tt.checkIn))
		})
	}
}

func TestEarliestAllowedDate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2025, time.March, 10), services.EarliestAllowedDate(now))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, services.Nights(date(2025, time.March, 10), date(2025, time.March, 13)))
	assert.Equal(t, 1, services.Nights(date(2025, time.March, 10), date(2025, time.March, 11)))
	// Across a month boundary and a leap day.
	assert.Equal(t, 2, services.Nights(date(2024, time.February, 28), date(2024, time.March, 1)))
}
