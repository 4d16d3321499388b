package catalog

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrTheaterNotFound  = errors.New("theater not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrUnknownCity      = errors.New("unknown city")
)

// Repository is the read/write surface of the catalog store. The booking
// flow only uses the read half; the write half belongs to the admin surface.
type Repository interface {
	ListMovies() []Movie
	GetMovie(id int) (*Movie, error)
	SaveMovie(movie Movie) (*Movie, error)
	DeleteMovie(id int) error

	ListTheaters() []Theater
	GetTheater(id int) (*Theater, error)
	TheatersByCity() map[string][]Theater
	TheatersIn(city string) ([]Theater, error)
	Cities() []string
	CityExists(city string) bool

	FindShowtime(movieID, showtimeID int) (*Movie, *Showtime, error)
}

// memoryRepository holds the immutable-per-load dataset. A mutex guards the
// movie slice because admin mutation may race with catalog reads; the
// booking flow tolerates the catalog changing size between reads.
type memoryRepository struct {
	mu       sync.RWMutex
	movies   []Movie
	theaters []Theater
	cities   map[string][]int
}

// NewRepository builds a catalog store from the given dataset.
func NewRepository(movies []Movie, theaters []Theater, cities map[string][]int) Repository {
	return &memoryRepository{
		movies:   movies,
		theaters: theaters,
		cities:   cities,
	}
}

func (r *memoryRepository) ListMovies() []Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Movie, len(r.movies))
	copy(out, r.movies)
	return out
}

func (r *memoryRepository) GetMovie(id int) (*Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.movies {
		if r.movies[i].ID == id {
			m := r.movies[i]
			return &m, nil
		}
	}
	return nil, ErrMovieNotFound
}

// SaveMovie replaces the record with the same ID, or appends the movie with
// a freshly generated ID when no record matches (or no ID was given).
func (r *memoryRepository) SaveMovie(movie Movie) (*Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID != 0 {
		for i := range r.movies {
			if r.movies[i].ID == movie.ID {
				if movie.Showtimes == nil {
					// An admin edit without showtimes keeps the existing grid.
					movie.Showtimes = r.movies[i].Showtimes
				}
				r.movies[i] = movie
				return &movie, nil
			}
		}
	}

	movie.ID = r.nextMovieIDLocked()
	if movie.Showtimes == nil {
		movie.Showtimes = []Showtime{}
	}
	r.movies = append(r.movies, movie)
	return &movie, nil
}

func (r *memoryRepository) nextMovieIDLocked() int {
	next := 1
	for i := range r.movies {
		if r.movies[i].ID >= next {
			next = r.movies[i].ID + 1
		}
	}
	return next
}

func (r *memoryRepository) DeleteMovie(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.movies {
		if r.movies[i].ID == id {
			r.movies = append(r.movies[:i], r.movies[i+1:]...)
			return nil
		}
	}
	return ErrMovieNotFound
}

func (r *memoryRepository) ListTheaters() []Theater {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Theater, len(r.theaters))
	copy(out, r.theaters)
	return out
}

func (r *memoryRepository) GetTheater(id int) (*Theater, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.theaters {
		if r.theaters[i].ID == id {
			t := r.theaters[i]
			return &t, nil
		}
	}
	return nil, ErrTheaterNotFound
}

func (r *memoryRepository) TheatersByCity() map[string][]Theater {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]Theater, len(r.cities))
	for city, ids := range r.cities {
		out[city] = r.theatersForIDsLocked(ids)
	}
	return out
}

func (r *memoryRepository) TheatersIn(city string) ([]Theater, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids, ok := r.cities[city]
	if !ok {
		return nil, ErrUnknownCity
	}
	return r.theatersForIDsLocked(ids), nil
}

func (r *memoryRepository) theatersForIDsLocked(ids []int) []Theater {
	out := make([]Theater, 0, len(ids))
	for _, id := range ids {
		for i := range r.theaters {
			if r.theaters[i].ID == id {
				out = append(out, r.theaters[i])
				break
			}
		}
	}
	return out
}

func (r *memoryRepository) Cities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.cities))
	for city := range r.cities {
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}

func (r *memoryRepository) CityExists(city string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cities[city]
	return ok
}

func (r *memoryRepository) FindShowtime(movieID, showtimeID int) (*Movie, *Showtime, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.movies {
		if r.movies[i].ID != movieID {
			continue
		}
		m := r.movies[i]
		if st, ok := m.FindShowtime(showtimeID); ok {
			return &m, st, nil
		}
		return nil, nil, ErrShowtimeNotFound
	}
	return nil, nil, ErrMovieNotFound
}
