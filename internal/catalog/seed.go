package catalog

import (
	"math/rand"

	"cineverse/internal/seating"
)

// newShowtime builds a showtime with a grid seeded from the showtime ID, so
// every process start produces the same pre-booked pattern for a given ID.
func newShowtime(id int, clock string, screen, rows, cols int, spec seating.GridSpec) Showtime {
	spec.Rows = rows
	spec.Cols = cols
	rng := rand.New(rand.NewSource(int64(id)))
	return Showtime{
		ID:      id,
		Time:    clock,
		Screen:  screen,
		Seating: seating.GenerateLayout(spec, rng),
	}
}

// SeedMovies returns the stock movie catalog.
func SeedMovies(spec seating.GridSpec) []Movie {
	return []Movie{
		{
			ID:        1,
			Title:     LocalizedText{En: "Echoes of the Void", Ta: "வெற்றிடத்தின் எதிரொலிகள்"},
			PosterURL: "https://image.tmdb.org/t/p/w500/AdKA2d3pZp0qgS5gPUw7pGfP2L.jpg",
			Genre:     "Sci-Fi, Thriller",
			Rating:    8.7,
			Synopsis: LocalizedText{
				En: "A lone astronaut on a deep space mission discovers a mysterious signal that could be the key to humanity's survival, but it might also be a harbinger of its doom.",
				Ta: "ஆழ்ந்த விண்வெளிப் பயணத்தில் ஒரு தனி விண்வெளி வீரர், மனிதகுலத்தின் உயிர்வாழ்வதற்கான திறவுகோலாக இருக்கக்கூடிய ஒரு மர்மமான சிக்னலைக் கண்டுபிடிக்கிறார், ஆனால் அது அதன் அழிவின் முன்னோடியாகவும் இருக்கலாம்.",
			},
			Showtimes: []Showtime{
				newShowtime(101, "10:00 AM", 1, 6, 8, spec),
				newShowtime(102, "02:30 PM", 3, 8, 10, spec),
				newShowtime(103, "07:00 PM", 1, 6, 8, spec),
			},
		},
		{
			ID:        2,
			Title:     LocalizedText{En: "The Crimson Cipher", Ta: "தி கிரிம்சன் சைஃபர்"},
			PosterURL: "https://image.tmdb.org/t/p/w500/7WsyChQLEftloC9jhhO5dsuevyp.jpg",
			Genre:     "Mystery, Action",
			Rating:    9.1,
			Synopsis: LocalizedText{
				En: "A brilliant cryptographer is entangled in a web of international espionage when she deciphers an ancient code that reveals a global conspiracy.",
				Ta: "ஒரு புத்திசாலித்தனமான கிரிப்டோகிராஃபர் ஒரு உலகளாவிய சதியை வெளிப்படுத்தும் ஒரு பழங்காலக் குறியீட்டைப் புரிந்துகொள்ளும்போது சர்வதேச உளவுத்துறையின் வலையில் சிக்கிக் கொள்கிறார்.",
			},
			Showtimes: []Showtime{
				newShowtime(201, "11:00 AM", 2, 7, 9, spec),
				newShowtime(202, "03:00 PM", 2, 7, 9, spec),
				newShowtime(203, "09:00 PM", 4, 5, 7, spec),
			},
		},
		{
			ID:        3,
			Title:     LocalizedText{En: "Jungle Fury", Ta: "ஜங்கிள் ப்யூரி"},
			PosterURL: "https://image.tmdb.org/t/p/w500/1E5baAaEse26fej7uHcjOgEE2t2.jpg",
			Genre:     "Adventure, Family",
			Rating:    7.9,
			Synopsis: LocalizedText{
				En: "A group of brave animals must band together to protect their home from a ruthless poacher who threatens the balance of their ecosystem.",
				Ta: "தங்கள் சுற்றுச்சூழல் அமைப்பின் சமநிலையை அச்சுறுத்தும் ஒரு இரக்கமற்ற வேட்டைக்காரனிடமிருந்து தங்கள் வீட்டைப் பாதுகாக்க ஒரு துணிச்சலான விலங்குகள் குழு ஒன்று சேர வேண்டும்.",
			},
			Showtimes: []Showtime{
				newShowtime(301, "09:30 AM", 5, 8, 8, spec),
				newShowtime(302, "12:30 PM", 5, 8, 8, spec),
			},
		},
		{
			ID:        4,
			Title:     LocalizedText{En: "Cybernetic Serenade", Ta: "சைபர்நெடிக் செரினேட்"},
			PosterURL: "https://image.tmdb.org/t/p/w500/sF1U4EUQS8YCl0MjlCnY1a4GceO.jpg",
			Genre:     "Romance, Sci-Fi",
			Rating:    8.2,
			Synopsis: LocalizedText{
				En: "In a futuristic city, a human falls in love with an advanced AI, challenging societal norms and the very definition of consciousness.",
				Ta: "ஒரு எதிர்கால நகரத்தில், ஒரு மனிதன் ஒரு மேம்பட்ட AI உடன் காதலில் விழுகிறான், இது சமூக நெறிகளையும் உணர்வின் வரையறையையும் கேள்விக்குள்ளாக்குகிறது.",
			},
			Showtimes: []Showtime{
				newShowtime(401, "01:00 PM", 3, 8, 10, spec),
				newShowtime(402, "06:00 PM", 3, 8, 10, spec),
			},
		},
		{
			ID:        5,
			Title:     LocalizedText{En: "The Last Heirloom", Ta: "கடைசி வாரிசு"},
			PosterURL: "https://image.tmdb.org/t/p/w500/uJYYizSuA9Y3DCs0qS4qWvHfZg4.jpg",
			Genre:     "Drama, History",
			Rating:    8.5,
			Synopsis: LocalizedText{
				En: "A young historian uncovers a family secret that leads her on a quest across continents to find a long-lost artifact of immense cultural significance.",
				Ta: "ஒரு இளம் வரலாற்றாசிரியர் ஒரு குடும்ப ரகசியத்தை வெளிக்கொணர்கிறார், இது மகத்தான கலாச்சார முக்கியத்துவம் வாய்ந்த நீண்டகாலமாக இழந்த ஒரு கலைப்பொருளைக் கண்டுபிடிக்க கண்டங்கள் முழுவதும் ஒரு தேடலுக்கு அவளை வழிநடத்துகிறது.",
			},
			Showtimes: []Showtime{
				newShowtime(501, "04:00 PM", 4, 5, 7, spec),
				newShowtime(502, "08:00 PM", 2, 7, 9, spec),
			},
		},
	}
}

// SeedTheaters returns the stock theater list.
func SeedTheaters() []Theater {
	return []Theater{
		{ID: 1, Name: "CineSphere Multiplex"},
		{ID: 2, Name: "Galaxy Cinemas"},
		{ID: 3, Name: "Regal Screens"},
		{ID: 4, Name: "StarLight Drive-In"},
		{ID: 5, Name: "Metro Grand"},
		{ID: 6, Name: "Nexus Cinema Palace"},
	}
}

// SeedCities returns the stock city to theater-ID mapping.
func SeedCities() map[string][]int {
	return map[string][]int{
		"Chennai":    {1, 3, 5},
		"Coimbatore": {2, 6},
		"Madurai":    {4},
	}
}
