package catalog

import (
	"cineverse/internal/seating"
)

// LocalizedText carries the English and Tamil renderings of a display string.
type LocalizedText struct {
	En string `json:"en"`
	Ta string `json:"ta"`
}

// Showtime is one scheduled screening of a movie. The seat grid is built
// once when the showtime is loaded into the catalog and reused across
// booking attempts; it is never regenerated per user.
type Showtime struct {
	ID      int            `json:"id"`
	Time    string         `json:"time"`
	Screen  int            `json:"screen"`
	Seating seating.Layout `json:"seating"`
}

// Movie is one catalog entry. Immutable through the booking flow; the admin
// surface replaces the whole record by ID.
type Movie struct {
	ID        int           `json:"id"`
	Title     LocalizedText `json:"title"`
	PosterURL string        `json:"poster_url"`
	Genre     string        `json:"genre"`
	Rating    float64       `json:"rating"`
	Synopsis  LocalizedText `json:"synopsis"`
	Showtimes []Showtime    `json:"showtimes"`
}

// Theater is a venue; a theater belongs to one or more cities through the
// city mapping held by the store.
type Theater struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FindShowtime returns the showtime with the given ID, if the movie has it.
func (m *Movie) FindShowtime(showtimeID int) (*Showtime, bool) {
	for i := range m.Showtimes {
		if m.Showtimes[i].ID == showtimeID {
			return &m.Showtimes[i], true
		}
	}
	return nil, false
}
