package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cineverse/internal/catalog"
	"cineverse/internal/seating"
)

func sampleInput(userID string, total float64) NewBookingInput {
	return NewBookingInput{
		UserID:  userID,
		Movie:   catalog.Movie{ID: 1, Title: catalog.LocalizedText{En: "Echoes of the Void"}},
		Theater: catalog.Theater{ID: 1, Name: "CineSphere Multiplex"},
		Showtime: catalog.Showtime{ID: 101, Time: "10:00 AM", Screen: 1},
		Seats: []seating.Seat{
			{ID: "A1", Number: "A1", Status: seating.StatusAvailable, Price: 250},
			{ID: "C3", Number: "C3", Status: seating.StatusAvailable, Price: 150},
		},
		ShowDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice: total,
	}
}

func TestAddBooking_AssignsIdentityAndTimestamp(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	svc := NewServiceWithClock(NewRepository(), func() time.Time { return fixed })

	booking := svc.AddBooking(sampleInput("user-1", 400))

	assert.True(t, strings.HasPrefix(booking.ID, "BKG-"))
	assert.Equal(t, fixed, booking.BookingTime)
	assert.Equal(t, 400.0, booking.TotalPrice)
	assert.Equal(t, 101, booking.Showtime.ID)
	assert.Len(t, booking.Seats, 2)
}

func TestAddBooking_UniqueIDs(t *testing.T) {
	svc := NewService(NewRepository())
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		b := svc.AddBooking(sampleInput("user-1", 150))
		assert.False(t, seen[b.ID], "duplicate booking ID %s", b.ID)
		seen[b.ID] = true
	}
}

func TestListAll_NewestFirst(t *testing.T) {
	repo := NewRepository()
	svc := NewService(repo)

	first := svc.AddBooking(sampleInput("user-1", 150))
	second := svc.AddBooking(sampleInput("user-2", 250))
	third := svc.AddBooking(sampleInput("user-1", 400))

	all := svc.ListAll()
	assert.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
}

func TestListByUser(t *testing.T) {
	svc := NewService(NewRepository())

	svc.AddBooking(sampleInput("user-1", 150))
	svc.AddBooking(sampleInput("user-2", 250))
	latest := svc.AddBooking(sampleInput("user-1", 400))

	mine := svc.ListByUser("user-1")
	assert.Len(t, mine, 2)
	assert.Equal(t, latest.ID, mine[0].ID)

	assert.Empty(t, svc.ListByUser("user-3"))
}

func TestTotalPriceNotRecomputed(t *testing.T) {
	// The ledger records whatever total the caller computed at confirmation
	// time, even if seat prices would sum differently later.
	svc := NewService(NewRepository())
	input := sampleInput("user-1", 999)
	booking := svc.AddBooking(input)
	assert.Equal(t, 999.0, booking.TotalPrice)
}
