package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cineverse/internal/catalog"
	"cineverse/internal/ledger"
	"cineverse/internal/payment"
	"cineverse/internal/seating"
)

func newTestService(t *testing.T) (Service, ledger.Service) {
	t.Helper()
	repo := catalog.NewRepository(
		catalog.SeedMovies(seating.DefaultGridSpec(0, 0)),
		catalog.SeedTheaters(),
		catalog.SeedCities(),
	)
	led := ledger.NewService(ledger.NewRepository())
	gw := payment.NewStubGateway(0)
	now := func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }
	return NewServiceWithClock(repo, led, gw, "Chennai", now), led
}

// firstAvailableSeat scans the projected layout for a seat the user can pick.
func firstAvailableSeat(view SessionView) string {
	for _, row := range view.Showtime.Seating {
		for _, seat := range row {
			if seat.Status == seating.StatusAvailable {
				return seat.ID
			}
		}
	}
	return ""
}

func firstBookedSeat(view SessionView) string {
	for _, row := range view.Showtime.Seating {
		for _, seat := range row {
			if seat.Status == seating.StatusBooked {
				return seat.ID
			}
		}
	}
	return ""
}

// driveToPayment walks a fresh session to the payment step with one seat
// selected.
func driveToPayment(t *testing.T, svc Service, userID string) SessionView {
	t.Helper()

	view, err := svc.SelectTheater(userID, 1)
	assert.NoError(t, err)

	view, err = svc.SelectMovie(userID, 1)
	assert.NoError(t, err)

	view, err = svc.SelectShowtime(userID, 1, 101, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	seatID := firstAvailableSeat(view)
	assert.NotEmpty(t, seatID)
	view, err = svc.ToggleSeat(userID, seatID)
	assert.NoError(t, err)

	view, err = svc.ConfirmSeats(userID)
	assert.NoError(t, err)

	view, err = svc.ProceedToPayment(userID)
	assert.NoError(t, err)
	assert.Equal(t, StepPayment.String(), view.Step)
	return view
}

func validCardRequest() payment.SubmitRequest {
	return payment.SubmitRequest{
		Method: payment.MethodCard,
		Card: &payment.CardForm{
			Number: "4111 1111 1111 1111",
			Name:   "Arun Kumar",
			Expiry: "12/27",
			CVV:    "123",
		},
	}
}

func TestNewSessionStartsAtTheaterSelection(t *testing.T) {
	svc, _ := newTestService(t)
	view := svc.Session("u1")

	assert.Equal(t, StepTheaterSelection.String(), view.Step)
	assert.Equal(t, "Chennai", view.City)
	assert.Nil(t, view.Theater)
	assert.Empty(t, view.SelectedSeats)
}

func TestSelectTheaterOutsideCityRejected(t *testing.T) {
	svc, _ := newTestService(t)

	// Theater 4 is in Madurai, not Chennai.
	_, err := svc.SelectTheater("u1", 4)
	assert.ErrorIs(t, err, catalog.ErrTheaterNotFound)
}

func TestShowDateOutsideWindowRejected(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.SelectTheater("u1", 1)
	assert.NoError(t, err)
	_, err = svc.SelectMovie("u1", 1)
	assert.NoError(t, err)

	_, err = svc.SelectShowtime("u1", 1, 101, time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrDateOutOfWindow)

	_, err = svc.SelectShowtime("u1", 1, 101, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestToggleBookedSeatIsSilentNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	_, _ = svc.SelectTheater("u1", 1)
	_, _ = svc.SelectMovie("u1", 1)
	view, err := svc.SelectShowtime("u1", 1, 101, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	seatID := firstBookedSeat(view)
	assert.NotEmpty(t, seatID, "seeded grid should contain booked seats")

	next, err := svc.ToggleSeat("u1", seatID)
	assert.NoError(t, err)
	assert.Empty(t, next.SelectedSeats)
	assert.Zero(t, next.TotalPrice)
}

func TestToggleSeatMarksSelectedInProjection(t *testing.T) {
	svc, _ := newTestService(t)
	_, _ = svc.SelectTheater("u1", 1)
	_, _ = svc.SelectMovie("u1", 1)
	view, _ := svc.SelectShowtime("u1", 1, 101, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	seatID := firstAvailableSeat(view)
	next, err := svc.ToggleSeat("u1", seatID)
	assert.NoError(t, err)

	projected, ok := next.Showtime.Seating.Find(seatID)
	assert.True(t, ok)
	assert.Equal(t, seating.StatusSelected, projected.Status)

	// Toggling again restores AVAILABLE.
	next, err = svc.ToggleSeat("u1", seatID)
	assert.NoError(t, err)
	projected, _ = next.Showtime.Seating.Find(seatID)
	assert.Equal(t, seating.StatusAvailable, projected.Status)
}

func TestSuccessfulPaymentCreatesExactlyOneBooking(t *testing.T) {
	svc, led := newTestService(t)
	driveToPayment(t, svc, "u1")

	result, err := svc.SubmitPayment(context.Background(), "u1", validCardRequest())
	assert.NoError(t, err)
	assert.NotNil(t, result.Booking)
	assert.Contains(t, result.Booking.ID, "BKG-")
	assert.NotEmpty(t, result.TransactionID)

	// Session returned to the start of the flow.
	assert.Equal(t, StepTheaterSelection.String(), result.Session.Step)

	bookings := led.ListByUser("u1")
	assert.Len(t, bookings, 1)
	assert.Equal(t, result.Booking.ID, bookings[0].ID)
	assert.Equal(t, result.Booking.TotalPrice, bookings[0].TotalPrice)
}

func TestCatalogMutationDoesNotDisturbSessionInFlight(t *testing.T) {
	repo := catalog.NewRepository(
		catalog.SeedMovies(seating.DefaultGridSpec(0, 0)),
		catalog.SeedTheaters(),
		catalog.SeedCities(),
	)
	led := ledger.NewService(ledger.NewRepository())
	now := func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }
	svc := NewServiceWithClock(repo, led, payment.NewStubGateway(0), "Chennai", now)
	driveToPayment(t, svc, "u1")

	// An admin deletes the movie while the user sits on the payment step.
	// The session holds its own copies, so the booking still lands.
	assert.NoError(t, repo.DeleteMovie(1))
	_, err := repo.GetMovie(1)
	assert.ErrorIs(t, err, catalog.ErrMovieNotFound)

	result, err := svc.SubmitPayment(context.Background(), "u1", validCardRequest())
	assert.NoError(t, err)
	assert.NotNil(t, result.Booking)

	bookings := led.ListByUser("u1")
	assert.Len(t, bookings, 1)
	assert.Equal(t, 1, bookings[0].Movie.ID)
}

func TestInvalidCardCreatesNoBooking(t *testing.T) {
	svc, led := newTestService(t)
	driveToPayment(t, svc, "u1")

	req := validCardRequest()
	req.Card.Number = "4111 1111 1111 111" // 15 digits

	result, err := svc.SubmitPayment(context.Background(), "u1", req)
	assert.ErrorIs(t, err, ErrPaymentValidation)
	assert.Contains(t, result.FieldErrors, "card_number")
	assert.Zero(t, len(led.ListAll()))

	// Session still on the payment step, ready for a corrected retry.
	view := svc.Session("u1")
	assert.Equal(t, StepPayment.String(), view.Step)
	assert.False(t, view.PaymentInFlight)
}

func TestSubmitPaymentBeforePaymentStepRejected(t *testing.T) {
	svc, led := newTestService(t)

	_, err := svc.SubmitPayment(context.Background(), "u1", validCardRequest())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, len(led.ListAll()))
}

func TestCityChangeDuringPaymentDiscardsCompletion(t *testing.T) {
	repo := catalog.NewRepository(
		catalog.SeedMovies(seating.DefaultGridSpec(0, 0)),
		catalog.SeedTheaters(),
		catalog.SeedCities(),
	)
	led := ledger.NewService(ledger.NewRepository())
	gw := payment.NewStubGateway(50 * time.Millisecond)
	now := func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }
	svc := NewServiceWithClock(repo, led, gw, "Chennai", now)

	driveToPayment(t, svc, "u1")

	done := make(chan error, 1)
	go func() {
		_, err := svc.SubmitPayment(context.Background(), "u1", validCardRequest())
		done <- err
	}()

	// Switch city while the charge is still in the gateway delay.
	time.Sleep(10 * time.Millisecond)
	_, err := svc.ChangeCity("u1", "Madurai")
	assert.NoError(t, err)

	assert.ErrorIs(t, <-done, ErrStaleCompletion)
	assert.Zero(t, len(led.ListAll()))

	view := svc.Session("u1")
	assert.Equal(t, "Madurai", view.City)
	assert.Equal(t, StepTheaterSelection.String(), view.Step)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SelectTheater("u1", 1)
	assert.NoError(t, err)

	view := svc.Session("u2")
	assert.Equal(t, StepTheaterSelection.String(), view.Step)
	assert.Nil(t, view.Theater)
}

func TestChangeCityToUnknownCityRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ChangeCity("u1", "Bengaluru")
	assert.ErrorIs(t, err, catalog.ErrUnknownCity)

	// Session untouched by the failed switch.
	view := svc.Session("u1")
	assert.Equal(t, "Chennai", view.City)
}

func TestResetAbandonsProgress(t *testing.T) {
	svc, _ := newTestService(t)
	driveToPayment(t, svc, "u1")

	view := svc.Reset("u1")
	assert.Equal(t, StepTheaterSelection.String(), view.Step)
	assert.Equal(t, "Chennai", view.City)
	assert.Empty(t, view.SelectedSeats)
}

func TestDatesFormatAndCount(t *testing.T) {
	svc, _ := newTestService(t)
	dates := svc.Dates()

	assert.Len(t, dates, 7)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), dates[0])
}
