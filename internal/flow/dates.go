package flow

import "time"

// bookableDays is how far ahead a show date may be picked, today included.
const bookableDays = 7

// DateWindow returns the selectable show dates starting at now's calendar
// day, normalized to midnight in now's location.
func DateWindow(now time.Time) []time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dates := make([]time.Time, 0, bookableDays)
	for i := 0; i < bookableDays; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}

// DateInWindow reports whether d falls on one of the bookable days.
func DateInWindow(now, d time.Time) bool {
	for _, w := range DateWindow(now) {
		if sameDay(w, d) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
