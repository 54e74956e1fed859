package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	UserRatingsTotal int
	PriceLevel       int
	PlaceID          string
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchHotels returns highly rated lodging options in the destination city.
// minRating filters out anything below the guest's star preference.
func (s *PlacesService) SearchHotels(ctx context.Context, destination string, minRating float32, limit int) ([]Place, error) {
	query := fmt.Sprintf("hotels in %s", destination)
	return s.textSearch(ctx, query, maps.PlaceTypeLodging, minRating, limit)
}

// SearchRestaurants returns well reviewed restaurants in the destination city.
// cuisineHint narrows the query when the guest named a cuisine preference.
func (s *PlacesService) SearchRestaurants(ctx context.Context, destination string, cuisineHint string, limit int) ([]Place, error) {
	query := fmt.Sprintf("restaurants in %s", destination)
	if strings.TrimSpace(cuisineHint) != "" {
		query = fmt.Sprintf("%s restaurants in %s", cuisineHint, destination)
	}
	return s.textSearch(ctx, query, maps.PlaceTypeRestaurant, 4.0, limit)
}

func (s *PlacesService) textSearch(ctx context.Context, query string, placeType maps.PlaceType, minRating float32, limit int) ([]Place, error) {
	if limit <= 0 {
		limit = 5
	}

	r := &maps.TextSearchRequest{
		Query:    query,
		Type:     placeType,
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < minRating {
			continue
		}
		// Unrated listings are usually closed or brand new; skip them.
		if result.UserRatingsTotal == 0 {
			continue
		}

		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
			PriceLevel:       result.PriceLevel,
			PlaceID:          result.PlaceID,
		})

		if len(results) >= limit {
			break
		}
	}

	return results, nil
}
