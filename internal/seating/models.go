package seating

// Seat is one bookable seat inside a showtime layout.
// ID and Number are both derived from the grid position ("A1", "C3", ...);
// they are kept as separate fields because admin tooling may relabel the
// display number without changing identity.
type Seat struct {
	ID     string     `json:"id"`
	Number string     `json:"number"`
	Status SeatStatus `json:"status"`
	Price  float64    `json:"price"`
}

// Layout is the fixed rows-by-columns seat grid of one showtime,
// outer slice ordered by row, inner by column.
type Layout [][]Seat

// Find returns the seat with the given ID, if present.
func (l Layout) Find(seatID string) (Seat, bool) {
	for _, row := range l {
		for _, seat := range row {
			if seat.ID == seatID {
				return seat, true
			}
		}
	}
	return Seat{}, false
}

// Rows returns the number of rows in the layout.
func (l Layout) Rows() int {
	return len(l)
}

// SeatCount returns the total number of seats in the layout.
func (l Layout) SeatCount() int {
	n := 0
	for _, row := range l {
		n += len(row)
	}
	return n
}
