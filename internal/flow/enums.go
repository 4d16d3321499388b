package flow

// Step is the current position in the booking progression.
type Step string

const (
	StepTheaterSelection Step = "THEATER_SELECTION"
	StepMovieSelection   Step = "MOVIE_SELECTION"
	StepMovieDetail      Step = "MOVIE_DETAIL"
	StepSeatSelection    Step = "SEAT_SELECTION"
	StepBookingSummary   Step = "BOOKING_SUMMARY"
	StepPayment          Step = "PAYMENT"
)

func (s Step) IsValid() bool {
	switch s {
	case StepTheaterSelection, StepMovieSelection, StepMovieDetail,
		StepSeatSelection, StepBookingSummary, StepPayment:
		return true
	}
	return false
}

func (s Step) String() string {
	return string(s)
}
