// README: Google Flights engine queries and response models.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// FlightQuery describes a round-trip flight search.
type FlightQuery struct {
	DepartureID string // origin airport IATA code
	ArrivalID   string // destination airport IATA code
	// Dates in YYYY-MM-DD.
	OutboundDate string
	ReturnDate   string
	Currency     string
	Language     string
	// DepartureToken, when set, asks for the return-leg options of a chosen
	// outbound flight. The response then carries booking tokens.
	DepartureToken string
}

// Airport identifies one endpoint of a flight leg.
type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// FlightLeg is a single segment of an itinerary.
type FlightLeg struct {
	DepartureAirport Airport `json:"departure_airport"`
	ArrivalAirport   Airport `json:"arrival_airport"`
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
}

// FlightOffer is one bookable itinerary from the best_flights list.
type FlightOffer struct {
	Legs           []FlightLeg `json:"flights"`
	TotalDuration  int         `json:"total_duration"` // minutes
	Price          int64       `json:"price"`
	AirlineLogo    string      `json:"airline_logo"`
	DepartureToken string      `json:"departure_token"`
	BookingToken   string      `json:"booking_token"`
}

// FlightResults is the subset of the google_flights response we consume.
type FlightResults struct {
	BestFlights  []FlightOffer `json:"best_flights"`
	OtherFlights []FlightOffer `json:"other_flights"`
}

// SearchFlights runs a google_flights search and returns the parsed results.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) (*FlightResults, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", q.DepartureID)
	params.Set("arrival_id", q.ArrivalID)
	params.Set("outbound_date", q.OutboundDate)
	params.Set("return_date", q.ReturnDate)
	if q.Currency != "" {
		params.Set("currency", q.Currency)
	}
	if q.Language != "" {
		params.Set("hl", q.Language)
	}
	if q.DepartureToken != "" {
		params.Set("departure_token", q.DepartureToken)
	}

	body, err := c.do(ctx, params)
	if err != nil {
		return nil, err
	}

	var results FlightResults
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse flight results: %w", err)
	}
	return &results, nil
}
