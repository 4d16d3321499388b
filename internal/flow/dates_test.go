package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateWindowHasSevenDaysStartingToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)
	dates := DateWindow(now)

	assert.Len(t, dates, 7)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), dates[6])
	for _, d := range dates {
		assert.Equal(t, 0, d.Hour())
	}
}

func TestDateWindowSpansMonthBoundary(t *testing.T) {
	now := time.Date(2025, 1, 30, 9, 0, 0, 0, time.UTC)
	dates := DateWindow(now)

	assert.Equal(t, time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), dates[6])
}

func TestDateInWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"today with time of day", time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC), true},
		{"last day of window", time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"eighth day", time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateInWindow(now, tt.date))
		})
	}
}
