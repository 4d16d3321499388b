package seating

// Project returns a render copy of the layout where every seat whose
// identity is in the selection carries effective status SELECTED. The
// stored layout is never mutated; divergence between stored and displayed
// status is impossible because the overlay is recomputed on every call.
func Project(layout Layout, selection *Selection) Layout {
	out := make(Layout, len(layout))
	for i, row := range layout {
		projected := make([]Seat, len(row))
		copy(projected, row)
		if selection != nil {
			for j, seat := range projected {
				if selection.Contains(seat.ID) {
					projected[j].Status = StatusSelected
				}
			}
		}
		out[i] = projected
	}
	return out
}
