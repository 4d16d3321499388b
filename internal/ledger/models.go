package ledger

import (
	"time"

	"cineverse/internal/catalog"
	"cineverse/internal/seating"
)

// Booking is one finalized reservation. Created exactly once, at the moment
// payment succeeds, and immutable thereafter. TotalPrice is supplied by the
// caller from the pre-payment selection so later catalog price edits cannot
// drift a confirmed booking.
type Booking struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Movie       catalog.Movie    `json:"movie"`
	Theater     catalog.Theater  `json:"theater"`
	Showtime    ShowtimeRef      `json:"showtime"`
	Seats       []seating.Seat   `json:"seats"`
	ShowDate    time.Time        `json:"show_date"`
	BookingTime time.Time        `json:"booking_time"`
	TotalPrice  float64          `json:"total_price"`
}

// ShowtimeRef pins the screening a booking was made for without dragging
// the full seat grid into every ledger entry.
type ShowtimeRef struct {
	ID     int    `json:"id"`
	Time   string `json:"time"`
	Screen int    `json:"screen"`
}

// NewBookingInput is everything the flow hands over at confirmation time.
type NewBookingInput struct {
	UserID     string
	Movie      catalog.Movie
	Theater    catalog.Theater
	Showtime   catalog.Showtime
	Seats      []seating.Seat
	ShowDate   time.Time
	TotalPrice float64
}
