// README: Travel plan aggregate and request definitions.
package plan

import (
	"errors"
	"strings"
	"time"

	"voyago/internal/modules/flight"
)

var ErrNotFound = errors.New("plan not found")

// ValidationError collects every problem with a request so the caller can
// show them all at once.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Issues, "; ")
}

// Option lists shown in the UI selects.
var (
	TravelThemes  = []string{"Couple Getaway", "Family Vacation", "Adventure Trip", "Solo Exploration"}
	BudgetOptions = []string{"Economy", "Standard", "Luxury"}
	HotelRatings  = []string{"Any", "3", "4", "5"}
)

// Request is the validated input for one plan generation.
type Request struct {
	Origin        string
	Destination   string
	Days          int
	Theme         string
	DepartureDate time.Time
	ReturnDate    time.Time
	Preferences   string
	Budget        string
	HotelRating   string
}

// Plan is the assembled result of the full pipeline.
type Plan struct {
	ID            string          `json:"id"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	Days          int             `json:"days"`
	Theme         string          `json:"theme"`
	DepartureDate time.Time       `json:"departure_date"`
	ReturnDate    time.Time       `json:"return_date"`
	Flights       []flight.Option `json:"flights"`
	Research      string          `json:"research"`
	Stays         string          `json:"stays"`
	Itinerary     string          `json:"itinerary"`
	Document      string          `json:"document"`
	CreatedAt     time.Time       `json:"created_at"`
}
