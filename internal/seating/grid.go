package seating

import (
	"fmt"
	"math/rand"
)

// GridSpec describes how a showtime layout is generated.
type GridSpec struct {
	Rows          int
	Cols          int
	PremiumRows   int     // row indexes below this are premium
	PremiumPrice  float64 // per-seat price for premium rows
	StandardPrice float64 // per-seat price for all other rows
	BookedRatio   float64 // probability a seat is pre-booked at load time
}

// DefaultGridSpec returns the pricing and seeding used by the stock catalog.
func DefaultGridSpec(rows, cols int) GridSpec {
	return GridSpec{
		Rows:          rows,
		Cols:          cols,
		PremiumRows:   2,
		PremiumPrice:  250,
		StandardPrice: 150,
		BookedRatio:   0.2,
	}
}

// SeatCode builds the canonical seat identity for a grid position:
// row letter ('A' + zero-based row) followed by the 1-based column.
func SeatCode(rowIdx, colIdx int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(rowIdx), colIdx+1)
}

// GenerateLayout builds a seat grid once, at showtime load time. Booked
// seats are seeded from rng so a fixed seed yields a reproducible grid.
// Seats are never generated in SELECTED state.
func GenerateLayout(spec GridSpec, rng *rand.Rand) Layout {
	layout := make(Layout, 0, spec.Rows)
	for i := 0; i < spec.Rows; i++ {
		row := make([]Seat, 0, spec.Cols)
		price := spec.StandardPrice
		if i < spec.PremiumRows {
			price = spec.PremiumPrice
		}
		for j := 0; j < spec.Cols; j++ {
			code := SeatCode(i, j)
			status := StatusAvailable
			if rng.Float64() < spec.BookedRatio {
				status = StatusBooked
			}
			row = append(row, Seat{
				ID:     code,
				Number: code,
				Status: status,
				Price:  price,
			})
		}
		layout = append(layout, row)
	}
	return layout
}
