package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cineverse/internal/seating"
)

func seededRepo() Repository {
	return NewRepository(SeedMovies(seating.DefaultGridSpec(0, 0)), SeedTheaters(), SeedCities())
}

func TestSeedDataset(t *testing.T) {
	repo := seededRepo()

	assert.Len(t, repo.ListMovies(), 5)
	assert.Len(t, repo.ListTheaters(), 6)
	assert.Equal(t, []string{"Chennai", "Coimbatore", "Madurai"}, repo.Cities())

	chennai, err := repo.TheatersIn("Chennai")
	assert.NoError(t, err)
	assert.Len(t, chennai, 3)
	assert.Equal(t, "CineSphere Multiplex", chennai[0].Name)

	_, err = repo.TheatersIn("Mumbai")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestSeedShowtimeGridsDeterministic(t *testing.T) {
	a := seededRepo()
	b := seededRepo()

	_, stA, err := a.FindShowtime(1, 101)
	assert.NoError(t, err)
	_, stB, err := b.FindShowtime(1, 101)
	assert.NoError(t, err)

	assert.Equal(t, 6, stA.Seating.Rows())
	assert.Equal(t, 48, stA.Seating.SeatCount())
	assert.Equal(t, stA.Seating, stB.Seating)
}

func TestFindShowtime(t *testing.T) {
	repo := seededRepo()

	movie, st, err := repo.FindShowtime(2, 203)
	assert.NoError(t, err)
	assert.Equal(t, "The Crimson Cipher", movie.Title.En)
	assert.Equal(t, "09:00 PM", st.Time)
	assert.Equal(t, 4, st.Screen)

	_, _, err = repo.FindShowtime(2, 999)
	assert.ErrorIs(t, err, ErrShowtimeNotFound)

	_, _, err = repo.FindShowtime(99, 101)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestSaveMovie_ReplaceByID(t *testing.T) {
	repo := seededRepo()

	existing, err := repo.GetMovie(3)
	assert.NoError(t, err)
	showtimes := len(existing.Showtimes)

	updated := *existing
	updated.Rating = 8.4
	updated.Showtimes = nil // edits without showtimes keep the grid

	saved, err := repo.SaveMovie(updated)
	assert.NoError(t, err)
	assert.Equal(t, 3, saved.ID)
	assert.Equal(t, 8.4, saved.Rating)
	assert.Len(t, saved.Showtimes, showtimes)
	assert.Len(t, repo.ListMovies(), 5)
}

func TestSaveMovie_AppendWithFreshID(t *testing.T) {
	repo := seededRepo()

	saved, err := repo.SaveMovie(Movie{
		Title:     LocalizedText{En: "New Release", Ta: "புதிய வெளியீடு"},
		PosterURL: "https://example.com/poster.jpg",
		Genre:     "Action",
		Rating:    7.0,
		Synopsis:  LocalizedText{En: "synopsis", Ta: "சுருக்கம்"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 6, saved.ID)
	assert.NotNil(t, saved.Showtimes)
	assert.Len(t, repo.ListMovies(), 6)

	// Unknown non-zero IDs append rather than fail, and the stale ID is
	// replaced with a generated one.
	again, err := repo.SaveMovie(Movie{ID: 42, Title: LocalizedText{En: "x", Ta: "y"}})
	assert.NoError(t, err)
	assert.Equal(t, 7, again.ID)

	next, err := repo.SaveMovie(Movie{Title: LocalizedText{En: "z", Ta: "w"}})
	assert.NoError(t, err)
	assert.Equal(t, 8, next.ID)
}

func TestDeleteMovie(t *testing.T) {
	repo := seededRepo()

	assert.NoError(t, repo.DeleteMovie(2))
	assert.Len(t, repo.ListMovies(), 4)
	_, err := repo.GetMovie(2)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	assert.ErrorIs(t, repo.DeleteMovie(2), ErrMovieNotFound)
}

func TestTheatersByCity(t *testing.T) {
	repo := seededRepo()
	byCity := repo.TheatersByCity()

	assert.Len(t, byCity, 3)
	assert.Len(t, byCity["Coimbatore"], 2)
	assert.Equal(t, "StarLight Drive-In", byCity["Madurai"][0].Name)
}
