package flow

import (
	"errors"
	"fmt"
	"time"

	"cineverse/internal/catalog"
	"cineverse/internal/seating"
)

var (
	ErrInvalidTransition = errors.New("invalid transition for current step")
	ErrEmptySelection    = errors.New("selection is empty")
	ErrPaymentInFlight   = errors.New("a payment submission is already in flight")
	ErrStaleCompletion   = errors.New("stale payment completion discarded")
)

// State is the full condition of one booking session. Everything below
// Step is a choice accumulated on the way; a reset clears all of it except
// the active city.
type State struct {
	Step             Step
	City             string
	Theater          *catalog.Theater
	Movie            *catalog.Movie
	Showtime         *catalog.Showtime
	ShowDate         time.Time
	Selection        *seating.Selection
	PaymentInFlight  bool
	PaymentAttemptID string
}

// NewState returns the machine's initial state for a city.
func NewState(city string) State {
	return State{
		Step:      StepTheaterSelection,
		City:      city,
		Selection: seating.NewSelection(),
	}
}

// reset clears every transient choice, keeping only the city.
func reset(city string) State {
	return NewState(city)
}

// Transition applies one event to the state and returns the next state.
// It is the single place step changes happen; every (step, event) pair not
// listed here is ErrInvalidTransition.
func Transition(s State, ev Event) (State, error) {
	switch e := ev.(type) {
	case ChangeCity:
		// Valid from any step: choices are not valid across city
		// boundaries, so everything downstream is dropped.
		return reset(e.City), nil

	case Reset:
		return reset(s.City), nil

	case SelectTheater:
		if s.Step != StepTheaterSelection {
			return s, stepError(s.Step, "select theater")
		}
		s.Theater = &e.Theater
		s.Step = StepMovieSelection
		return s, nil

	case SelectMovie:
		if s.Step != StepMovieSelection {
			return s, stepError(s.Step, "select movie")
		}
		s.Movie = &e.Movie
		s.Step = StepMovieDetail
		return s, nil

	case SelectShowtime:
		if s.Step != StepMovieDetail {
			return s, stepError(s.Step, "select showtime")
		}
		s.Showtime = &e.Showtime
		s.ShowDate = e.Date
		s.Selection = seating.NewSelection()
		s.Step = StepSeatSelection
		return s, nil

	case ConfirmSeats:
		if s.Step != StepSeatSelection {
			return s, stepError(s.Step, "confirm seats")
		}
		if s.Selection == nil || s.Selection.IsEmpty() {
			return s, ErrEmptySelection
		}
		s.Step = StepBookingSummary
		return s, nil

	case ProceedToPayment:
		if s.Step != StepBookingSummary {
			return s, stepError(s.Step, "proceed to payment")
		}
		s.Step = StepPayment
		return s, nil

	case PaymentStarted:
		if s.Step != StepPayment {
			return s, stepError(s.Step, "start payment")
		}
		if s.PaymentInFlight {
			return s, ErrPaymentInFlight
		}
		s.PaymentInFlight = true
		s.PaymentAttemptID = e.AttemptID
		return s, nil

	case PaymentAborted:
		if s.Step == StepPayment && s.PaymentInFlight && s.PaymentAttemptID == e.AttemptID {
			s.PaymentInFlight = false
			s.PaymentAttemptID = ""
		}
		return s, nil

	case PaymentSucceeded:
		if s.Step != StepPayment || !s.PaymentInFlight || s.PaymentAttemptID != e.AttemptID {
			// The session moved on (city change, reset) while the charge
			// was processing. A finished booking must not resurrect.
			return s, ErrStaleCompletion
		}
		return reset(s.City), nil

	default:
		return s, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
	}
}

func stepError(step Step, action string) error {
	return fmt.Errorf("%w: cannot %s at %s", ErrInvalidTransition, action, step)
}
