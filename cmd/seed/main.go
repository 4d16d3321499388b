package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"cineverse/internal/catalog"
	"cineverse/internal/seating"
	"cineverse/internal/shared/config"
)

// Inspects the stock catalog the server seeds at startup: movies,
// showtimes, theaters, cities and per-grid availability. With -json the
// full dataset is dumped for frontend fixtures.
func main() {
	jsonOut := flag.String("json", "", "write the full catalog as JSON to this file")
	flag.Parse()

	fmt.Println("🌱 Cineverse catalog seed preview")

	cfg := config.Load()
	gridSpec := seating.GridSpec{
		PremiumRows:   cfg.Seating.PremiumRows,
		PremiumPrice:  cfg.Seating.PremiumPrice,
		StandardPrice: cfg.Seating.StandardPrice,
		BookedRatio:   cfg.Seating.BookedRatio,
	}

	movies := catalog.SeedMovies(gridSpec)
	theaters := catalog.SeedTheaters()
	cities := catalog.SeedCities()

	fmt.Printf("\n🎬 Movies: %d\n", len(movies))
	for _, m := range movies {
		fmt.Printf("  [%d] %s (%s) rating %.1f\n", m.ID, m.Title.En, m.Genre, m.Rating)
		for _, st := range m.Showtimes {
			total := st.Seating.SeatCount()
			booked := 0
			for _, row := range st.Seating {
				for _, seat := range row {
					if seat.Status == seating.StatusBooked {
						booked++
					}
				}
			}
			fmt.Printf("      showtime %d  %s  screen %d  %d/%d seats free\n",
				st.ID, st.Time, st.Screen, total-booked, total)
		}
	}

	fmt.Printf("\n🏛  Theaters: %d\n", len(theaters))
	for _, t := range theaters {
		fmt.Printf("  [%d] %s\n", t.ID, t.Name)
	}

	fmt.Printf("\n🌆 Cities: %d\n", len(cities))
	for city, ids := range cities {
		fmt.Printf("  %s -> theaters %v\n", city, ids)
	}

	if *jsonOut != "" {
		dump := map[string]interface{}{
			"movies":   movies,
			"theaters": theaters,
			"cities":   cities,
		}
		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal catalog: %v", err)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *jsonOut, err)
		}
		fmt.Printf("\n✅ Catalog written to %s\n", *jsonOut)
	}
}
