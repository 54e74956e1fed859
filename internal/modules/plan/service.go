// README: Plan service orchestrates the agent pipeline and assembles the document.
package plan

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"voyago/internal/modules/finder"
	"voyago/internal/modules/flight"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/research"
	"voyago/internal/types"
)

// Neutral section placeholders substituted when a pipeline step fails.
// Later steps still run with whatever context is available.
const (
	placeholderFlights   = "Flight search is currently unavailable. Please check fares closer to your departure date."
	placeholderResearch  = "Destination research is currently unavailable. Please consult a travel guide for attractions and local tips."
	placeholderStays     = "Hotel and restaurant recommendations are currently unavailable. Booking sites will have up-to-date options."
	placeholderItinerary = "Itinerary generation is currently unavailable. Use the research and recommendations above to plan your days."
)

// FlightFinder looks up the cheapest flight options.
type FlightFinder interface {
	Search(ctx context.Context, q flight.Query) ([]flight.Option, error)
}

// Researcher produces the destination guide.
type Researcher interface {
	Research(ctx context.Context, req research.Request) (string, error)
}

// StayFinder produces the hotel and restaurant lists.
type StayFinder interface {
	FindStays(ctx context.Context, req finder.Request) (string, error)
}

// ItineraryPlanner produces the day-by-day plan.
type ItineraryPlanner interface {
	BuildItinerary(ctx context.Context, req itinerary.Request) (string, error)
}

type Service struct {
	flights    FlightFinder
	researcher Researcher
	finder     StayFinder
	planner    ItineraryPlanner
	store      *Store
}

// NewService wires the four pipeline steps. store may be nil to disable the
// archive.
func NewService(flights FlightFinder, researcher Researcher, stayFinder StayFinder, planner ItineraryPlanner, store *Store) *Service {
	return &Service{
		flights:    flights,
		researcher: researcher,
		finder:     stayFinder,
		planner:    planner,
		store:      store,
	}
}

// Generate validates the request, runs the four steps in their fixed order,
// and assembles the plan document. A failed step contributes a placeholder
// section; the document always contains all four sections.
func (s *Service) Generate(ctx context.Context, req Request) (*Plan, error) {
	if verr := req.Validate(time.Now()); verr != nil {
		return nil, verr
	}

	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))

	p := &Plan{
		ID:            newID(),
		Origin:        req.Origin,
		Destination:   req.Destination,
		Days:          req.Days,
		Theme:         req.Theme,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		CreatedAt:     time.Now(),
	}

	// Step 1: flights.
	flights, err := s.flights.Search(ctx, flight.Query{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
	})
	if err != nil {
		log.Printf("plan %s: flight search failed: %v", p.ID, err)
	}
	p.Flights = flights

	// Step 2: destination research.
	p.Research, err = s.researcher.Research(ctx, research.Request{
		Destination: req.Destination,
		Days:        req.Days,
		Theme:       req.Theme,
		Preferences: req.Preferences,
		Budget:      req.Budget,
	})
	if err != nil {
		log.Printf("plan %s: research failed: %v", p.ID, err)
		p.Research = placeholderResearch
	}

	// Step 3: hotels and restaurants.
	p.Stays, err = s.finder.FindStays(ctx, finder.Request{
		Destination: req.Destination,
		Theme:       req.Theme,
		Budget:      req.Budget,
		HotelRating: req.HotelRating,
		Preferences: req.Preferences,
	})
	if err != nil {
		log.Printf("plan %s: finder failed: %v", p.ID, err)
		p.Stays = placeholderStays
	}

	// Step 4: itinerary, fed with the outputs of steps 2 and 3.
	p.Itinerary, err = s.planner.BuildItinerary(ctx, itinerary.Request{
		Destination:   req.Destination,
		Days:          req.Days,
		Theme:         req.Theme,
		Preferences:   req.Preferences,
		Budget:        req.Budget,
		ResearchNotes: p.Research,
		StayNotes:     p.Stays,
	})
	if err != nil {
		log.Printf("plan %s: itinerary failed: %v", p.ID, err)
		p.Itinerary = placeholderItinerary
	}

	p.Document = assembleDocument(p)

	if s.store != nil {
		if err := s.store.SavePlan(ctx, p); err != nil {
			// The caller still gets the plan; only the archive copy is lost.
			log.Printf("plan %s: archive write failed: %v", p.ID, err)
		}
	}

	return p, nil
}

// Get returns a previously generated plan from the archive.
func (s *Service) Get(ctx context.Context, id string) (*Plan, error) {
	if s.store == nil {
		return nil, ErrNotFound
	}
	return s.store.GetPlan(ctx, id)
}

// assembleDocument renders the downloadable markdown document.
func assembleDocument(p *Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Travel Plan: %s to %s\n\n", p.Origin, p.Destination)
	fmt.Fprintf(&b, "## Trip Details\n")
	fmt.Fprintf(&b, "- Duration: %d days\n", p.Days)
	fmt.Fprintf(&b, "- Theme: %s\n", p.Theme)
	fmt.Fprintf(&b, "- Dates: %s to %s\n\n",
		p.DepartureDate.Format("2006-01-02"), p.ReturnDate.Format("2006-01-02"))

	b.WriteString("## Flights\n")
	b.WriteString(flightSection(p.Flights))
	b.WriteString("\n## Destination Research\n")
	b.WriteString(p.Research)
	b.WriteString("\n\n## Hotels & Restaurants\n")
	b.WriteString(p.Stays)
	b.WriteString("\n\n## Itinerary\n")
	b.WriteString(p.Itinerary)
	b.WriteString("\n")

	return b.String()
}

func flightSection(options []flight.Option) string {
	if len(options) == 0 {
		return placeholderFlights + "\n"
	}

	var b strings.Builder
	for i, opt := range options {
		stops := "non-stop"
		if opt.Layovers == 1 {
			stops = "1 stop"
		} else if opt.Layovers > 1 {
			stops = fmt.Sprintf("%d stops", opt.Layovers)
		}
		fmt.Fprintf(&b, "%d. %s — %s | %s | %s\n", i+1, opt.Airline,
			opt.Price.Format(), types.FormatDuration(opt.DurationMinutes), stops)
		fmt.Fprintf(&b, "   %s (%s) %s → %s (%s) %s\n",
			opt.DepartureAirport, opt.DepartureAirportName, types.FormatTimestamp(opt.DepartureTime),
			opt.ArrivalAirport, opt.ArrivalAirportName, types.FormatTimestamp(opt.ArrivalTime))
		if opt.BookingURL != "" && opt.BookingURL != "#" {
			fmt.Fprintf(&b, "   Book: %s\n", opt.BookingURL)
		}
	}
	return b.String()
}

func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
