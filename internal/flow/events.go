package flow

import (
	"time"

	"cineverse/internal/catalog"
)

// Event is the tagged union of everything that can advance or reset the
// booking machine. Seat toggling is deliberately not an event: it changes
// the selection, not the step.
type Event interface {
	isFlowEvent()
}

// SelectTheater records the chosen theater and moves to movie selection.
type SelectTheater struct {
	Theater catalog.Theater
}

// SelectMovie records the chosen movie and moves to the movie detail step.
type SelectMovie struct {
	Movie catalog.Movie
}

// SelectShowtime records the chosen screening and show date and moves to
// seat selection. The caller validates the date against the offered window.
type SelectShowtime struct {
	Showtime catalog.Showtime
	Date     time.Time
}

// ConfirmSeats moves to the booking summary. Rejected when the selection
// is empty.
type ConfirmSeats struct{}

// ProceedToPayment is the pure progression from summary to payment.
type ProceedToPayment struct{}

// PaymentStarted marks a submission in flight, blocking duplicates.
type PaymentStarted struct {
	AttemptID string
}

// PaymentAborted clears an in-flight submission that did not complete.
type PaymentAborted struct {
	AttemptID string
}

// PaymentSucceeded is the gateway's completion signal. It only lands when
// the session is still on the payment step with the same attempt ID;
// otherwise the completion is stale and discarded.
type PaymentSucceeded struct {
	AttemptID string
}

// ChangeCity is the side-channel reset: valid from any step, it returns to
// theater selection and clears every downstream choice.
type ChangeCity struct {
	City string
}

// Reset abandons the in-progress booking and starts over in the same city.
type Reset struct{}

func (SelectTheater) isFlowEvent()    {}
func (SelectMovie) isFlowEvent()      {}
func (SelectShowtime) isFlowEvent()   {}
func (ConfirmSeats) isFlowEvent()     {}
func (ProceedToPayment) isFlowEvent() {}
func (PaymentStarted) isFlowEvent()   {}
func (PaymentAborted) isFlowEvent()   {}
func (PaymentSucceeded) isFlowEvent() {}
func (ChangeCity) isFlowEvent()       {}
func (Reset) isFlowEvent()            {}
