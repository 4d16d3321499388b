package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"

	"cineverse/internal/seating"
)

var validate = validator.New()

// ValidationError carries per-field messages for inline rendering; the
// record is never saved when it is returned.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid movie payload: " + strings.Join(parts, "; ")
}

// Service exposes catalog reads to the booking flow and catalog writes to
// the admin surface.
type Service interface {
	ListMovies() []MovieSummary
	GetMovie(id int) (*Movie, error)
	ListTheaters() []Theater
	TheatersByCity() map[string][]Theater
	TheatersIn(city string) ([]Theater, error)
	Cities() []string
	CityExists(city string) bool
	FindShowtime(movieID, showtimeID int) (*Movie, *Showtime, error)

	SaveMovie(req SaveMovieRequest) (*Movie, error)
	DeleteMovie(id int) error
}

type service struct {
	repo     Repository
	gridSpec seating.GridSpec
}

// NewService wraps a catalog repository. gridSpec drives seat-grid
// generation for admin-created showtimes.
func NewService(repo Repository, gridSpec seating.GridSpec) Service {
	return &service{repo: repo, gridSpec: gridSpec}
}

func (s *service) ListMovies() []MovieSummary {
	movies := s.repo.ListMovies()
	out := make([]MovieSummary, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieSummary(m))
	}
	return out
}

func (s *service) GetMovie(id int) (*Movie, error) {
	return s.repo.GetMovie(id)
}

func (s *service) ListTheaters() []Theater {
	return s.repo.ListTheaters()
}

func (s *service) TheatersByCity() map[string][]Theater {
	return s.repo.TheatersByCity()
}

func (s *service) TheatersIn(city string) ([]Theater, error) {
	return s.repo.TheatersIn(city)
}

func (s *service) Cities() []string {
	return s.repo.Cities()
}

func (s *service) CityExists(city string) bool {
	return s.repo.CityExists(city)
}

func (s *service) FindShowtime(movieID, showtimeID int) (*Movie, *Showtime, error) {
	return s.repo.FindShowtime(movieID, showtimeID)
}

// SaveMovie validates the admin payload and replaces-or-appends the record.
// Showtime grids for new showtimes are generated here, once, from the
// configured grid spec.
func (s *service) SaveMovie(req SaveMovieRequest) (*Movie, error) {
	if err := validateSaveMovie(req); err != nil {
		return nil, err
	}

	movie := Movie{
		ID:        req.ID,
		Title:     LocalizedText{En: req.Title.En, Ta: req.Title.Ta},
		PosterURL: req.PosterURL,
		Genre:     req.Genre,
		Rating:    req.Rating,
		Synopsis:  LocalizedText{En: req.Synopsis.En, Ta: req.Synopsis.Ta},
	}

	if req.Showtimes != nil {
		movie.Showtimes = make([]Showtime, 0, len(req.Showtimes))
		for i, stReq := range req.Showtimes {
			spec := s.gridSpec
			spec.Rows = stReq.Rows
			spec.Cols = stReq.Cols
			id := req.ID*100 + i + 1
			movie.Showtimes = append(movie.Showtimes, Showtime{
				ID:      id,
				Time:    stReq.Time,
				Screen:  stReq.Screen,
				Seating: seating.GenerateLayout(spec, rand.New(rand.NewSource(int64(id)))),
			})
		}
	}

	return s.repo.SaveMovie(movie)
}

func (s *service) DeleteMovie(id int) error {
	return s.repo.DeleteMovie(id)
}

func validateSaveMovie(req SaveMovieRequest) error {
	fields := map[string]string{}

	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fieldKey(fe)] = fieldMessage(fe)
			}
		} else {
			return err
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func fieldKey(fe validator.FieldError) string {
	// "SaveMovieRequest.Title.En" -> "title.en"
	path := strings.SplitN(fe.Namespace(), ".", 2)
	key := fe.Namespace()
	if len(path) == 2 {
		key = path[1]
	}
	return strings.ToLower(key)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
