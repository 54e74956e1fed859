// README: Flight option model extracted from search results.
package flight

import (
	"time"

	"voyago/internal/types"
)

// Query describes one round-trip lookup.
type Query struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
}

// Option is a single bookable flight, flattened for display.
type Option struct {
	Airline              string      `json:"airline"`
	AirlineLogo          string      `json:"airline_logo,omitempty"`
	Price                types.Money `json:"price"`
	DurationMinutes      int         `json:"duration_minutes"`
	DepartureAirport     string      `json:"departure_airport"`
	DepartureAirportName string      `json:"departure_airport_name"`
	DepartureTime        string      `json:"departure_time"`
	ArrivalAirport       string      `json:"arrival_airport"`
	ArrivalAirportName   string      `json:"arrival_airport_name"`
	ArrivalTime          string      `json:"arrival_time"`
	Layovers             int         `json:"layovers"`
	BookingURL           string      `json:"booking_url"`

	// DepartureToken allows a follow-up query for the booking link.
	DepartureToken string `json:"-"`
}
