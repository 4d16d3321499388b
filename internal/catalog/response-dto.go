package catalog

// MovieSummary is the listing shape: no seat grids, just card data.
type MovieSummary struct {
	ID        int           `json:"id"`
	Title     LocalizedText `json:"title"`
	PosterURL string        `json:"poster_url"`
	Genre     string        `json:"genre"`
	Rating    float64       `json:"rating"`
	Showtimes []ShowtimeRef `json:"showtimes"`
}

// ShowtimeRef is a showtime without its seating layout.
type ShowtimeRef struct {
	ID     int    `json:"id"`
	Time   string `json:"time"`
	Screen int    `json:"screen"`
	Seats  int    `json:"seats"`
}

// CityTheatersResponse maps each city to its theaters.
type CityTheatersResponse map[string][]Theater

func toMovieSummary(m Movie) MovieSummary {
	refs := make([]ShowtimeRef, 0, len(m.Showtimes))
	for _, st := range m.Showtimes {
		refs = append(refs, ShowtimeRef{
			ID:     st.ID,
			Time:   st.Time,
			Screen: st.Screen,
			Seats:  st.Seating.SeatCount(),
		})
	}
	return MovieSummary{
		ID:        m.ID,
		Title:     m.Title,
		PosterURL: m.PosterURL,
		Genre:     m.Genre,
		Rating:    m.Rating,
		Showtimes: refs,
	}
}
