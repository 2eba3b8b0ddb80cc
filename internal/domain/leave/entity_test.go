package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCoversDate(t *testing.T) {
	r := LeaveRequest{
		StartDate: utcDate(2026, time.August, 31),
		EndDate:   utcDate(2026, time.September, 2),
	}

	eastOfUTC := time.FixedZone("UTC+5", 5*60*60)
	westOfUTC := time.FixedZone("UTC-5", -5*60*60)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"day before start", utcDate(2026, time.August, 30), false},
		{"start boundary", utcDate(2026, time.August, 31), true},
		{"inside range", utcDate(2026, time.September, 1), true},
		{"end boundary", utcDate(2026, time.September, 2), true},
		{"day after end", utcDate(2026, time.September, 3), false},
		{"start boundary, early local morning east of UTC",
			time.Date(2026, time.August, 31, 2, 0, 0, 0, eastOfUTC), true},
		{"end boundary, late local evening west of UTC",
			time.Date(2026, time.September, 2, 23, 0, 0, 0, westOfUTC), true},
		{"local day after end west of UTC",
			time.Date(2026, time.September, 3, 1, 0, 0, 0, westOfUTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.CoversDate(tt.at))
		})
	}
}

func TestCoversDate_SingleDayRange(t *testing.T) {
	today := utcDate(2026, time.August, 31)
	r := LeaveRequest{StartDate: today, EndDate: today}

	// The stored date is UTC; the clock reading is local. The calendar date is
	// what must match.
	local := time.FixedZone("UTC+5", 5*60*60)
	assert.True(t, r.CoversDate(time.Date(2026, time.August, 31, 2, 0, 0, 0, local)))
	assert.True(t, r.CoversDate(time.Date(2026, time.August, 31, 23, 59, 0, 0, local)))
	assert.False(t, r.CoversDate(time.Date(2026, time.September, 1, 0, 1, 0, 0, local)))
}
