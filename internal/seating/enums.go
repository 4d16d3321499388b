package seating

// SeatStatus is the lifecycle status of a single seat.
//
// AVAILABLE and BOOKED are intrinsic to a showtime's stored layout.
// SELECTED only ever appears in projected layouts, never in stored ones.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "AVAILABLE"
	StatusBooked    SeatStatus = "BOOKED"
	StatusSelected  SeatStatus = "SELECTED"
)

func (s SeatStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusSelected:
		return true
	}
	return false
}

func (s SeatStatus) String() string {
	return string(s)
}
