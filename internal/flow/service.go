package flow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cineverse/internal/catalog"
	"cineverse/internal/ledger"
	"cineverse/internal/payment"
	"cineverse/pkg/logger"
)

var (
	ErrDateOutOfWindow   = errors.New("show date outside the bookable window")
	ErrSeatNotFound      = errors.New("seat not found in the active layout")
	ErrPaymentValidation = errors.New("payment form validation failed")
)

// Service drives one booking session per user. All state lives in memory
// for the lifetime of the process; restarting the server starts everyone
// over at theater selection.
type Service interface {
	Session(userID string) SessionView
	ChangeCity(userID, city string) (SessionView, error)
	SelectTheater(userID string, theaterID int) (SessionView, error)
	SelectMovie(userID string, movieID int) (SessionView, error)
	SelectShowtime(userID string, movieID, showtimeID int, date time.Time) (SessionView, error)
	ToggleSeat(userID string, seatID string) (SessionView, error)
	ConfirmSeats(userID string) (SessionView, error)
	ProceedToPayment(userID string) (SessionView, error)
	SubmitPayment(ctx context.Context, userID string, req payment.SubmitRequest) (*PaymentResult, error)
	Reset(userID string) SessionView
	Dates() []time.Time
}

type service struct {
	catalog  catalog.Repository
	ledger   ledger.Service
	gateway  payment.Gateway
	sessions *sessionStore
	now      func() time.Time
	log      *logger.Logger
}

func NewService(cat catalog.Repository, led ledger.Service, gw payment.Gateway, defaultCity string) Service {
	return &service{
		catalog:  cat,
		ledger:   led,
		gateway:  gw,
		sessions: newSessionStore(defaultCity),
		now:      time.Now,
		log:      logger.GetDefault(),
	}
}

// NewServiceWithClock is used by tests that need a fixed date window.
func NewServiceWithClock(cat catalog.Repository, led ledger.Service, gw payment.Gateway, defaultCity string, now func() time.Time) Service {
	s := NewService(cat, led, gw, defaultCity).(*service)
	s.now = now
	return s
}

func (s *service) Session(userID string) SessionView {
	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.viewLocked(sess.state)
}

func (s *service) ChangeCity(userID, city string) (SessionView, error) {
	if !s.catalog.CityExists(city) {
		return SessionView{}, catalog.ErrUnknownCity
	}
	return s.apply(userID, ChangeCity{City: city})
}

func (s *service) SelectTheater(userID string, theaterID int) (SessionView, error) {
	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	theaters, err := s.catalog.TheatersIn(sess.state.City)
	if err != nil {
		return SessionView{}, err
	}
	var theater *catalog.Theater
	for i := range theaters {
		if theaters[i].ID == theaterID {
			theater = &theaters[i]
			break
		}
	}
	if theater == nil {
		return SessionView{}, catalog.ErrTheaterNotFound
	}
	return s.applyLocked(sess, SelectTheater{Theater: *theater})
}

func (s *service) SelectMovie(userID string, movieID int) (SessionView, error) {
	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	movie, err := s.catalog.GetMovie(movieID)
	if err != nil {
		return SessionView{}, err
	}
	return s.applyLocked(sess, SelectMovie{Movie: *movie})
}

func (s *service) SelectShowtime(userID string, movieID, showtimeID int, date time.Time) (SessionView, error) {
	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	_, showtime, err := s.catalog.FindShowtime(movieID, showtimeID)
	if err != nil {
		return SessionView{}, err
	}
	if !DateInWindow(s.now(), date) {
		return SessionView{}, ErrDateOutOfWindow
	}
	return s.applyLocked(sess, SelectShowtime{Showtime: *showtime, Date: date})
}

// ToggleSeat flips one seat in or out of the active selection. A BOOKED
// seat is rejected silently: the session is returned unchanged with no
// error, matching the audience-facing behavior of a dead seat.
func (s *service) ToggleSeat(userID string, seatID string) (SessionView, error) {
	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state.Step != StepSeatSelection {
		return SessionView{}, stepError(sess.state.Step, "toggle seat")
	}
	seat, ok := sess.state.Showtime.Seating.Find(seatID)
	if !ok {
		return SessionView{}, ErrSeatNotFound
	}
	sess.state.Selection.Toggle(seat)
	return s.viewLocked(sess.state), nil
}

func (s *service) ConfirmSeats(userID string) (SessionView, error) {
	return s.apply(userID, ConfirmSeats{})
}

func (s *service) ProceedToPayment(userID string) (SessionView, error) {
	return s.apply(userID, ProceedToPayment{})
}

// SubmitPayment validates the form, marks the attempt in flight, charges
// the gateway with the session unlocked, then records the booking if the
// session still awaits this attempt. A completion arriving after a city
// change or reset is discarded without creating a booking.
func (s *service) SubmitPayment(ctx context.Context, userID string, req payment.SubmitRequest) (*PaymentResult, error) {
	sess := s.sessions.get(userID)

	sess.mu.Lock()
	if errs := payment.ValidateSubmit(req, s.now()); !errs.OK() {
		sess.mu.Unlock()
		return &PaymentResult{FieldErrors: errs}, ErrPaymentValidation
	}

	attemptID := uuid.New().String()
	next, err := Transition(sess.state, PaymentStarted{AttemptID: attemptID})
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	sess.state = next

	// Snapshot everything the ledger needs before releasing the lock: the
	// session may be reset while the charge is processing.
	input := ledger.NewBookingInput{
		UserID:     userID,
		Movie:      *sess.state.Movie,
		Theater:    *sess.state.Theater,
		Showtime:   *sess.state.Showtime,
		Seats:      sess.state.Selection.Seats(),
		ShowDate:   sess.state.ShowDate,
		TotalPrice: sess.state.Selection.TotalPrice(),
	}
	sess.mu.Unlock()

	resp, chargeErr := s.gateway.Charge(ctx, &payment.ChargeRequest{
		AttemptID: attemptID,
		Amount:    input.TotalPrice,
		Currency:  "INR",
		Method:    req.Method,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if chargeErr != nil {
		if next, err := Transition(sess.state, PaymentAborted{AttemptID: attemptID}); err == nil {
			sess.state = next
		}
		return nil, fmt.Errorf("payment gateway: %w", chargeErr)
	}

	next, err = Transition(sess.state, PaymentSucceeded{AttemptID: attemptID})
	if err != nil {
		// Stale completion: the money moved in the stub but the session
		// moved on. No booking is written.
		s.log.LogPaymentDiscarded(ctx, attemptID, userID)
		return nil, err
	}
	sess.state = next

	booking := s.ledger.AddBooking(input)
	s.log.LogPaymentProcessed(ctx, attemptID, resp.TransactionID, input.TotalPrice)
	s.log.LogBookingCreated(ctx, booking.ID, strconv.Itoa(input.Movie.ID), userID)
	return &PaymentResult{
		Booking:       &booking,
		TransactionID: resp.TransactionID,
		Session:       s.viewLocked(sess.state),
	}, nil
}

func (s *service) Reset(userID string) SessionView {
	view, _ := s.apply(userID, Reset{})
	return view
}

// Dates returns the selectable show dates as of now.
func (s *service) Dates() []time.Time {
	return DateWindow(s.now())
}

func (s *service) apply(userID string, ev Event) (SessionView, error) {
	sess := s.sessions.get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.applyLocked(sess, ev)
}

func (s *service) applyLocked(sess *session, ev Event) (SessionView, error) {
	next, err := Transition(sess.state, ev)
	if err != nil {
		return SessionView{}, err
	}
	sess.state = next
	return s.viewLocked(sess.state), nil
}
