package seating

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func available(id string, price float64) Seat {
	return Seat{ID: id, Number: id, Status: StatusAvailable, Price: price}
}

func TestSelectionToggle_AddRemove(t *testing.T) {
	sel := NewSelection()
	seat := available("A1", 250)

	assert.True(t, sel.Toggle(seat))
	assert.True(t, sel.Contains("A1"))
	assert.Equal(t, 1, sel.Len())

	assert.True(t, sel.Toggle(seat))
	assert.False(t, sel.Contains("A1"))
	assert.True(t, sel.IsEmpty())
}

func TestSelectionToggle_IdempotenceLaw(t *testing.T) {
	// Even-count toggles leave the selection unchanged, odd-count toggles
	// leave it containing exactly that seat.
	seat := available("B4", 250)
	for _, n := range []int{1, 2, 3, 4, 9, 10} {
		sel := NewSelection()
		for i := 0; i < n; i++ {
			sel.Toggle(seat)
		}
		if n%2 == 1 {
			assert.Equal(t, []string{"B4"}, sel.IDs(), "after %d toggles", n)
		} else {
			assert.True(t, sel.IsEmpty(), "after %d toggles", n)
		}
	}
}

func TestSelectionToggle_BookedSeatRejectedSilently(t *testing.T) {
	sel := NewSelection()
	booked := Seat{ID: "D2", Number: "D2", Status: StatusBooked, Price: 150}

	assert.False(t, sel.Toggle(booked))
	assert.True(t, sel.IsEmpty())
	assert.Equal(t, StatusBooked, booked.Status)

	// No sequence of toggles may smuggle a booked seat in.
	for i := 0; i < 5; i++ {
		sel.Toggle(booked)
	}
	assert.False(t, sel.Contains("D2"))
}

func TestSelectionToggle_KeyedByIdentity(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(available("A1", 250))

	// A distinct value with the same identity removes the original.
	other := available("A1", 250)
	sel.Toggle(other)
	assert.True(t, sel.IsEmpty())
}

func TestSelectionOrderPreserved(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(available("C3", 150))
	sel.Toggle(available("A1", 250))
	sel.Toggle(available("B2", 250))
	assert.Equal(t, []string{"C3", "A1", "B2"}, sel.IDs())

	sel.Toggle(available("A1", 250)) // remove middle member
	assert.Equal(t, []string{"C3", "B2"}, sel.IDs())
}

func TestSelectionTotalPrice(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, 0.0, sel.TotalPrice())

	sel.Toggle(available("A1", 250))
	sel.Toggle(available("C3", 150))
	assert.Equal(t, 400.0, sel.TotalPrice())

	sel.Toggle(available("A1", 250))
	assert.Equal(t, 150.0, sel.TotalPrice())
}

func TestSelectionScenario_PremiumPlusStandard(t *testing.T) {
	// 6x8 grid, deterministic seeding with no pre-booked seats: selecting
	// A1 and C3 totals premium + standard.
	spec := DefaultGridSpec(6, 8)
	spec.BookedRatio = 0
	layout := GenerateLayout(spec, rand.New(rand.NewSource(42)))

	sel := NewSelection()
	for _, id := range []string{"A1", "C3"} {
		seat, ok := layout.Find(id)
		assert.True(t, ok)
		assert.True(t, sel.Toggle(seat))
	}

	assert.Equal(t, 400.0, sel.TotalPrice())
	assert.Equal(t, []string{"A1", "C3"}, sel.IDs())
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(available("A1", 250))
	sel.Toggle(available("A2", 250))
	sel.Clear()

	assert.True(t, sel.IsEmpty())
	assert.Equal(t, 0.0, sel.TotalPrice())
	assert.Empty(t, sel.Seats())
}

func TestProject_OverlayWithoutMutation(t *testing.T) {
	spec := DefaultGridSpec(3, 3)
	spec.BookedRatio = 0
	layout := GenerateLayout(spec, rand.New(rand.NewSource(5)))

	sel := NewSelection()
	seat, _ := layout.Find("B2")
	sel.Toggle(seat)

	projected := Project(layout, sel)

	got, _ := projected.Find("B2")
	assert.Equal(t, StatusSelected, got.Status)

	// The stored layout keeps its intrinsic status and prices.
	stored, _ := layout.Find("B2")
	assert.Equal(t, StatusAvailable, stored.Status)
	for i, row := range layout {
		for j, s := range row {
			assert.Equal(t, GenerateLayout(spec, rand.New(rand.NewSource(5)))[i][j].Price, s.Price)
		}
	}
}

func TestProject_NilSelection(t *testing.T) {
	spec := DefaultGridSpec(2, 2)
	layout := GenerateLayout(spec, rand.New(rand.NewSource(9)))
	projected := Project(layout, nil)
	assert.Equal(t, layout, projected)
}
