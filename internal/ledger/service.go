package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service assigns booking identity and capture time, then records the
// booking. Identity is unique across the session; the "BKG-" prefix matches
// the reference printed on tickets.
type Service interface {
	AddBooking(input NewBookingInput) Booking
	ListAll() []Booking
	ListByUser(userID string) []Booking
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock is used by tests that need a fixed capture time.
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func (s *service) AddBooking(input NewBookingInput) Booking {
	booking := Booking{
		ID:     fmt.Sprintf("BKG-%s", uuid.New().String()),
		UserID: input.UserID,
		Movie:  input.Movie,
		Theater: input.Theater,
		Showtime: ShowtimeRef{
			ID:     input.Showtime.ID,
			Time:   input.Showtime.Time,
			Screen: input.Showtime.Screen,
		},
		Seats:       input.Seats,
		ShowDate:    input.ShowDate,
		BookingTime: s.now(),
		TotalPrice:  input.TotalPrice,
	}
	s.repo.Append(booking)
	return booking
}

func (s *service) ListAll() []Booking {
	return s.repo.ListAll()
}

func (s *service) ListByUser(userID string) []Booking {
	return s.repo.ListByUser(userID)
}
