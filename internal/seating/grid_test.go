package seating

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatCode(t *testing.T) {
	tests := []struct {
		name string
		row  int
		col  int
		want string
	}{
		{name: "first seat", row: 0, col: 0, want: "A1"},
		{name: "first row last col", row: 0, col: 7, want: "A8"},
		{name: "third row third col", row: 2, col: 2, want: "C3"},
		{name: "sixth row", row: 5, col: 0, want: "F1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeatCode(tt.row, tt.col))
		})
	}
}

func TestGenerateLayout_Shape(t *testing.T) {
	spec := DefaultGridSpec(6, 8)
	layout := GenerateLayout(spec, rand.New(rand.NewSource(42)))

	assert.Equal(t, 6, layout.Rows())
	assert.Equal(t, 48, layout.SeatCount())

	for i, row := range layout {
		assert.Len(t, row, 8)
		for j, seat := range row {
			assert.Equal(t, SeatCode(i, j), seat.ID)
			assert.Equal(t, seat.ID, seat.Number)
			// Generation may only produce AVAILABLE or BOOKED.
			assert.NotEqual(t, StatusSelected, seat.Status)
		}
	}
}

func TestGenerateLayout_PriceTiers(t *testing.T) {
	spec := DefaultGridSpec(6, 8)
	layout := GenerateLayout(spec, rand.New(rand.NewSource(1)))

	for i, row := range layout {
		for _, seat := range row {
			if i < 2 {
				assert.Equal(t, 250.0, seat.Price, "row %d should be premium", i)
			} else {
				assert.Equal(t, 150.0, seat.Price, "row %d should be standard", i)
			}
		}
	}
}

func TestGenerateLayout_Deterministic(t *testing.T) {
	spec := DefaultGridSpec(8, 10)
	a := GenerateLayout(spec, rand.New(rand.NewSource(7)))
	b := GenerateLayout(spec, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestGenerateLayout_BookedRatioBounds(t *testing.T) {
	allBooked := DefaultGridSpec(4, 4)
	allBooked.BookedRatio = 1
	for _, row := range GenerateLayout(allBooked, rand.New(rand.NewSource(3))) {
		for _, seat := range row {
			assert.Equal(t, StatusBooked, seat.Status)
		}
	}

	noneBooked := DefaultGridSpec(4, 4)
	noneBooked.BookedRatio = 0
	for _, row := range GenerateLayout(noneBooked, rand.New(rand.NewSource(3))) {
		for _, seat := range row {
			assert.Equal(t, StatusAvailable, seat.Status)
		}
	}
}

func TestLayoutFind(t *testing.T) {
	spec := DefaultGridSpec(6, 8)
	spec.BookedRatio = 0
	layout := GenerateLayout(spec, rand.New(rand.NewSource(1)))

	seat, ok := layout.Find("C3")
	assert.True(t, ok)
	assert.Equal(t, "C3", seat.ID)
	assert.Equal(t, 150.0, seat.Price)

	_, ok = layout.Find("Z99")
	assert.False(t, ok)
}
