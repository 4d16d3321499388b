package flow

import (
	"time"

	"cineverse/internal/catalog"
	"cineverse/internal/ledger"
	"cineverse/internal/payment"
	"cineverse/internal/seating"
)

// SessionView is the API-facing snapshot of a booking session. The seat
// layout, when present, is the projected overlay with the user's selected
// seats marked SELECTED.
type SessionView struct {
	Step            string           `json:"step"`
	City            string           `json:"city"`
	Theater         *catalog.Theater `json:"theater,omitempty"`
	Movie           *MovieRef        `json:"movie,omitempty"`
	Showtime        *ShowtimeView    `json:"showtime,omitempty"`
	ShowDate        *time.Time       `json:"show_date,omitempty"`
	SelectedSeats   []seating.Seat   `json:"selected_seats"`
	TotalPrice      float64          `json:"total_price"`
	PaymentInFlight bool             `json:"payment_in_flight"`
}

// MovieRef is the movie slice of a session view, without the showtime
// grids that would bloat every snapshot.
type MovieRef struct {
	ID        int                   `json:"id"`
	Title     catalog.LocalizedText `json:"title"`
	PosterURL string                `json:"poster_url"`
	Genre     string                `json:"genre"`
	Rating    float64               `json:"rating"`
	Synopsis  catalog.LocalizedText `json:"synopsis"`
}

// ShowtimeView is the active screening plus its projected seat layout.
type ShowtimeView struct {
	ID      int            `json:"id"`
	Time    string         `json:"time"`
	Screen  int            `json:"screen"`
	Seating seating.Layout `json:"seating"`
}

// PaymentResult is the outcome of a payment submission. Exactly one of
// Booking or FieldErrors is set.
type PaymentResult struct {
	Booking       *ledger.Booking     `json:"booking,omitempty"`
	TransactionID string              `json:"transaction_id,omitempty"`
	FieldErrors   payment.FieldErrors `json:"field_errors,omitempty"`
	Session       SessionView         `json:"session"`
}

func (s *service) viewLocked(st State) SessionView {
	view := SessionView{
		Step:            st.Step.String(),
		City:            st.City,
		Theater:         st.Theater,
		SelectedSeats:   []seating.Seat{},
		PaymentInFlight: st.PaymentInFlight,
	}
	if st.Movie != nil {
		view.Movie = &MovieRef{
			ID:        st.Movie.ID,
			Title:     st.Movie.Title,
			PosterURL: st.Movie.PosterURL,
			Genre:     st.Movie.Genre,
			Rating:    st.Movie.Rating,
			Synopsis:  st.Movie.Synopsis,
		}
	}
	if st.Showtime != nil {
		view.Showtime = &ShowtimeView{
			ID:      st.Showtime.ID,
			Time:    st.Showtime.Time,
			Screen:  st.Showtime.Screen,
			Seating: seating.Project(st.Showtime.Seating, st.Selection),
		}
	}
	if !st.ShowDate.IsZero() {
		d := st.ShowDate
		view.ShowDate = &d
	}
	if st.Selection != nil {
		view.SelectedSeats = st.Selection.Seats()
		view.TotalPrice = st.Selection.TotalPrice()
	}
	return view
}
