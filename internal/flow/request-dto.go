package flow

// SelectTheaterRequest picks a theater from the active city.
type SelectTheaterRequest struct {
	TheaterID int `json:"theater_id" binding:"required"`
}

// SelectMovieRequest picks a movie playing at the chosen theater.
type SelectMovieRequest struct {
	MovieID int `json:"movie_id" binding:"required"`
}

// SelectShowtimeRequest picks a screening and a show date ("2006-01-02").
type SelectShowtimeRequest struct {
	MovieID    int    `json:"movie_id" binding:"required"`
	ShowtimeID int    `json:"showtime_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

// ToggleSeatRequest flips one seat in or out of the selection.
type ToggleSeatRequest struct {
	SeatID string `json:"seat_id" binding:"required"`
}

// ChangeCityRequest switches the active city, resetting the session.
type ChangeCityRequest struct {
	City string `json:"city" binding:"required"`
}
