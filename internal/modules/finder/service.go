// README: Finder agent curates hotels and restaurants from Places and web search.
package finder

import (
	"context"
	"fmt"
	"log"
	"strings"

	"voyago/internal/maps"
	"voyago/internal/search"
)

// Generator is the slice of the LLM provider this agent needs.
type Generator interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

// WebSearcher supplies grounding context for the prompt.
type WebSearcher interface {
	WebSearch(ctx context.Context, query string, limit int) ([]search.WebResult, error)
}

// PlacesDirectory is the slice of the Google Places layer this agent needs.
type PlacesDirectory interface {
	SearchHotels(ctx context.Context, destination string, minRating float32, limit int) ([]maps.Place, error)
	SearchRestaurants(ctx context.Context, destination string, cuisineHint string, limit int) ([]maps.Place, error)
}

// Request carries the trip parameters relevant to accommodation and dining.
type Request struct {
	Destination string
	Theme       string
	Budget      string
	HotelRating string // "Any", "3", "4", "5"
	Preferences string
}

type Service struct {
	llm    Generator
	web    WebSearcher
	places PlacesDirectory
	model  string
}

// NewService creates a Service. places may be nil when no Maps key is
// configured; curation then relies on web search alone.
func NewService(llm Generator, web WebSearcher, places PlacesDirectory, model string) *Service {
	return &Service{llm: llm, web: web, places: places, model: model}
}

// FindStays produces curated hotel and restaurant lists in markdown. Both
// grounding sources are best-effort; their failures never fail the agent.
func (s *Service) FindStays(ctx context.Context, req Request) (string, error) {
	var findings []search.WebResult
	if s.web != nil {
		query := fmt.Sprintf("best hotels and restaurants in %s %s budget", req.Destination, strings.ToLower(req.Budget))
		hits, err := s.web.WebSearch(ctx, query, 5)
		if err != nil {
			log.Printf("finder web grounding failed: %v", err)
		} else {
			findings = hits
		}
	}

	var hotels, restaurants []maps.Place
	if s.places != nil {
		var err error
		hotels, err = s.places.SearchHotels(ctx, req.Destination, minRating(req.HotelRating), 5)
		if err != nil {
			log.Printf("finder hotel lookup failed: %v", err)
		}
		restaurants, err = s.places.SearchRestaurants(ctx, req.Destination, "", 7)
		if err != nil {
			log.Printf("finder restaurant lookup failed: %v", err)
		}
	}

	return s.llm.Generate(ctx, s.model, buildPrompt(req, findings, hotels, restaurants))
}

// minRating maps the hotel rating preference to a Places rating floor.
func minRating(pref string) float32 {
	switch strings.TrimSpace(pref) {
	case "3":
		return 3.0
	case "4":
		return 4.0
	case "5":
		return 4.5
	default:
		return 0
	}
}

func placeDigest(places []maps.Place) string {
	if len(places) == 0 {
		return "No directory listings available."
	}
	var b strings.Builder
	for _, p := range places {
		fmt.Fprintf(&b, "- %s (rating %.1f from %d reviews) — %s\n",
			p.Name, p.Rating, p.UserRatingsTotal, p.Address)
	}
	return b.String()
}

func buildPrompt(req Request, findings []search.WebResult, hotels, restaurants []maps.Place) string {
	return fmt.Sprintf(`You are an expert at finding the best hotels and restaurants.
Search for highly-rated hotels in convenient locations and top-rated
restaurants offering diverse cuisines. Prioritize user preferences, ratings
and reviews. Provide specific names, locations, brief descriptions and
approximate price ranges, in markdown.

Find the best hotels and restaurants in %s for a %s trip.

Preferences:
- Budget: %s
- Hotel rating: %s stars or better
- Activities interested in: %s

Directory listings — hotels (verified ratings, prefer these):
%s
Directory listings — restaurants (verified ratings, prefer these):
%s
Web search findings:
%s

Please provide:

**Hotels** (3-5 recommendations): name and location, star and guest rating,
brief description and highlights, approximate price per night, proximity to
main attractions, special amenities.

**Restaurants** (5-7 recommendations): name and location, cuisine type,
brief description, approximate price range, must-try dishes, atmosphere.

Organize by area if helpful, and include options for different budgets
within the %s range.`,
		req.Destination, strings.ToLower(req.Theme),
		req.Budget, ratingLabel(req.HotelRating), req.Preferences,
		placeDigest(hotels), placeDigest(restaurants), search.Digest(findings),
		req.Budget)
}

func ratingLabel(pref string) string {
	if strings.TrimSpace(pref) == "" || strings.EqualFold(pref, "any") {
		return "any"
	}
	return pref
}
