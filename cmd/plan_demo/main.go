package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"voyago/internal/ai"
	"voyago/internal/modules/finder"
	"voyago/internal/modules/flight"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/plan"
	"voyago/internal/modules/research"
	"voyago/internal/search"
)

// Runs the full pipeline once from the command line, without Postgres or
// Redis. Useful for trying prompts against the live APIs.
func main() {
	serpKey := os.Getenv("SERPAPI_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if serpKey == "" || geminiKey == "" {
		log.Fatal("SERPAPI_KEY and GEMINI_API_KEY environment variables must be set")
	}

	ctx := context.Background()
	llm, err := ai.NewGeminiProvider(ctx, geminiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer llm.Close()

	searchClient := search.NewClient(serpKey)

	flightSvc := flight.NewService(searchClient, nil, "USD", 3)
	researchSvc := research.NewService(llm, searchClient, "gemini-2.0-flash")
	finderSvc := finder.NewService(llm, searchClient, nil, "gemini-2.0-flash")
	itinerarySvc := itinerary.NewService(llm, "gemini-1.5-pro")

	planSvc := plan.NewService(flightSvc, researchSvc, finderSvc, itinerarySvc, nil)

	departure := time.Now().AddDate(0, 0, 14)
	p, err := planSvc.Generate(ctx, plan.Request{
		Origin:        "BOM",
		Destination:   "DEL",
		Days:          5,
		Theme:         "Solo Exploration",
		DepartureDate: departure,
		ReturnDate:    departure.AddDate(0, 0, 5),
		Preferences:   "Exploring historical sites, trying local cuisine",
		Budget:        "Standard",
		HotelRating:   "4",
	})
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	fmt.Println(p.Document)
}
