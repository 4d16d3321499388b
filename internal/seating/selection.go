package seating

// Selection is the user's in-progress set of chosen seats for one booking
// attempt. Membership is keyed by seat identity, not object equality, and
// insertion order is preserved for display.
type Selection struct {
	order []string
	seats map[string]Seat
}

func NewSelection() *Selection {
	return &Selection{seats: make(map[string]Seat)}
}

// Toggle adds the seat to the selection, or removes it if already present.
// BOOKED seats are rejected silently: the call is a no-op and reports no
// change. Toggling the same seat twice always restores the prior state.
func (s *Selection) Toggle(seat Seat) bool {
	if seat.Status == StatusBooked {
		return false
	}
	if _, ok := s.seats[seat.ID]; ok {
		delete(s.seats, seat.ID)
		for i, id := range s.order {
			if id == seat.ID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return true
	}
	s.seats[seat.ID] = seat
	s.order = append(s.order, seat.ID)
	return true
}

// Contains reports whether the seat identity is currently selected.
func (s *Selection) Contains(seatID string) bool {
	_, ok := s.seats[seatID]
	return ok
}

// Seats returns the selected seats in insertion order.
func (s *Selection) Seats() []Seat {
	out := make([]Seat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.seats[id])
	}
	return out
}

// IDs returns the selected seat identities in insertion order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// TotalPrice recomputes the sum of selected seat prices from the current
// members. There is no cached value to go stale.
func (s *Selection) TotalPrice() float64 {
	total := 0.0
	for _, id := range s.order {
		total += s.seats[id].Price
	}
	return total
}

// Len returns the number of selected seats.
func (s *Selection) Len() int {
	return len(s.order)
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return len(s.order) == 0
}

// Clear drops every member. Called whenever the active showtime, date,
// theater or city changes.
func (s *Selection) Clear() {
	s.order = nil
	s.seats = make(map[string]Seat)
}
