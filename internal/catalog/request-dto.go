package catalog

// LocalizedTextPayload mirrors LocalizedText for admin submissions; both
// locales are mandatory so every catalog entry stays fully localized.
type LocalizedTextPayload struct {
	En string `json:"en" validate:"required"`
	Ta string `json:"ta" validate:"required"`
}

// ShowtimePayload lets the admin define a screening along with the grid
// dimensions its seat layout should be generated with.
type ShowtimePayload struct {
	Time   string `json:"time" validate:"required"`
	Screen int    `json:"screen" validate:"required,min=1"`
	Rows   int    `json:"rows" validate:"required,min=1,max=26"`
	Cols   int    `json:"cols" validate:"required,min=1,max=50"`
}

// SaveMovieRequest is the admin add-or-update payload. A zero ID creates a
// new record; a known ID replaces that record wholesale.
type SaveMovieRequest struct {
	ID        int                  `json:"id"`
	Title     LocalizedTextPayload `json:"title" validate:"required"`
	PosterURL string               `json:"poster_url" validate:"required,url"`
	Genre     string               `json:"genre" validate:"required"`
	Rating    float64              `json:"rating" validate:"min=0,max=10"`
	Synopsis  LocalizedTextPayload `json:"synopsis" validate:"required"`
	Showtimes []ShowtimePayload    `json:"showtimes" validate:"omitempty,dive"`
}
