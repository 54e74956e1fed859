package plan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voyago/internal/modules/finder"
	"voyago/internal/modules/flight"
	"voyago/internal/modules/itinerary"
	"voyago/internal/modules/research"
	"voyago/internal/types"
)

type stubFlights struct {
	options []flight.Option
	err     error
	calls   int
}

func (s *stubFlights) Search(_ context.Context, _ flight.Query) ([]flight.Option, error) {
	s.calls++
	return s.options, s.err
}

type stubResearcher struct {
	out   string
	err   error
	calls int
}

func (s *stubResearcher) Research(_ context.Context, _ research.Request) (string, error) {
	s.calls++
	return s.out, s.err
}

type stubFinder struct {
	out   string
	err   error
	calls int
}

func (s *stubFinder) FindStays(_ context.Context, _ finder.Request) (string, error) {
	s.calls++
	return s.out, s.err
}

type stubPlanner struct {
	out     string
	err     error
	calls   int
	lastReq itinerary.Request
}

func (s *stubPlanner) BuildItinerary(_ context.Context, req itinerary.Request) (string, error) {
	s.calls++
	s.lastReq = req
	return s.out, s.err
}

func validRequest() Request {
	departure := time.Now().AddDate(0, 0, 14)
	return Request{
		Origin:        "BOM",
		Destination:   "DEL",
		Days:          5,
		Theme:         "Solo Exploration",
		DepartureDate: departure,
		ReturnDate:    departure.AddDate(0, 0, 5),
		Preferences:   "historical sites and local cuisine",
		Budget:        "Standard",
		HotelRating:   "4",
	}
}

func sampleOption() flight.Option {
	return flight.Option{
		Airline:          "IndiGo",
		Price:            types.Money{Amount: 12500, Currency: "INR"},
		DurationMinutes:  135,
		DepartureAirport: "BOM",
		ArrivalAirport:   "DEL",
		Layovers:         0,
		BookingURL:       "https://www.google.com/travel/flights?tfs=tok",
	}
}

func TestGenerate_AllStepsSucceed(t *testing.T) {
	flights := &stubFlights{options: []flight.Option{sampleOption()}}
	researcher := &stubResearcher{out: "RESEARCH NOTES"}
	stays := &stubFinder{out: "STAY NOTES"}
	planner := &stubPlanner{out: "DAY BY DAY"}

	svc := NewService(flights, researcher, stays, planner, nil)
	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, section := range []string{"## Flights", "## Destination Research", "## Hotels & Restaurants", "## Itinerary"} {
		if !strings.Contains(p.Document, section) {
			t.Errorf("document missing section %q", section)
		}
	}
	for _, content := range []string{"IndiGo", "RESEARCH NOTES", "STAY NOTES", "DAY BY DAY"} {
		if !strings.Contains(p.Document, content) {
			t.Errorf("document missing content %q", content)
		}
	}
	if p.ID == "" || len(p.ID) != 32 {
		t.Errorf("expected 32-char hex id, got %q", p.ID)
	}
}

// A failed step yields a placeholder section; the other sections are unaffected.
func TestGenerate_FlightFailureUsesPlaceholder(t *testing.T) {
	flights := &stubFlights{err: errors.New("api down")}
	researcher := &stubResearcher{out: "RESEARCH NOTES"}
	stays := &stubFinder{out: "STAY NOTES"}
	planner := &stubPlanner{out: "DAY BY DAY"}

	svc := NewService(flights, researcher, stays, planner, nil)
	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p.Document, placeholderFlights) {
		t.Error("expected flight placeholder in document")
	}
	if !strings.Contains(p.Document, "RESEARCH NOTES") || !strings.Contains(p.Document, "DAY BY DAY") {
		t.Error("other sections should be unaffected by flight failure")
	}
	if researcher.calls != 1 || stays.calls != 1 || planner.calls != 1 {
		t.Error("pipeline should continue after a failed step")
	}
}

func TestGenerate_ResearchFailureUsesPlaceholder(t *testing.T) {
	flights := &stubFlights{options: []flight.Option{sampleOption()}}
	researcher := &stubResearcher{err: errors.New("quota exhausted")}
	stays := &stubFinder{out: "STAY NOTES"}
	planner := &stubPlanner{out: "DAY BY DAY"}

	svc := NewService(flights, researcher, stays, planner, nil)
	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p.Document, placeholderResearch) {
		t.Error("expected research placeholder in document")
	}
	// The placeholder still flows downstream as itinerary context.
	if planner.lastReq.ResearchNotes != placeholderResearch {
		t.Errorf("planner got %q, want research placeholder", planner.lastReq.ResearchNotes)
	}
	if planner.lastReq.StayNotes != "STAY NOTES" {
		t.Errorf("planner got %q, want finder output", planner.lastReq.StayNotes)
	}
}

func TestGenerate_FinderFailureUsesPlaceholder(t *testing.T) {
	flights := &stubFlights{options: []flight.Option{sampleOption()}}
	researcher := &stubResearcher{out: "RESEARCH NOTES"}
	stays := &stubFinder{err: errors.New("places api down")}
	planner := &stubPlanner{out: "DAY BY DAY"}

	svc := NewService(flights, researcher, stays, planner, nil)
	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(p.Document, placeholderStays) {
		t.Error("expected stays placeholder in document")
	}
	if planner.lastReq.StayNotes != placeholderStays {
		t.Errorf("planner got %q, want stays placeholder", planner.lastReq.StayNotes)
	}
	// The research output still flows downstream untouched.
	if planner.lastReq.ResearchNotes != "RESEARCH NOTES" {
		t.Errorf("planner got %q, want research output", planner.lastReq.ResearchNotes)
	}
}

func TestGenerate_ItineraryFailureUsesPlaceholder(t *testing.T) {
	flights := &stubFlights{options: []flight.Option{sampleOption()}}
	researcher := &stubResearcher{out: "RESEARCH NOTES"}
	stays := &stubFinder{out: "STAY NOTES"}
	planner := &stubPlanner{err: errors.New("model overloaded")}

	svc := NewService(flights, researcher, stays, planner, nil)
	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.Document, placeholderItinerary) {
		t.Error("expected itinerary placeholder in document")
	}
	if !strings.Contains(p.Document, "STAY NOTES") {
		t.Error("finder section should be unaffected by itinerary failure")
	}
}

// Validation failures must be reported before any external call is made.
func TestGenerate_InvalidRequestCallsNothing(t *testing.T) {
	flights := &stubFlights{}
	researcher := &stubResearcher{}
	stays := &stubFinder{}
	planner := &stubPlanner{}

	svc := NewService(flights, researcher, stays, planner, nil)
	req := validRequest()
	req.Destination = "BOM" // same as origin
	req.Preferences = "x"

	_, err := svc.Generate(context.Background(), req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) < 2 {
		t.Errorf("expected all issues reported at once, got %v", verr.Issues)
	}
	if flights.calls+researcher.calls+stays.calls+planner.calls != 0 {
		t.Error("no step should run for an invalid request")
	}
}

func TestGenerate_EmptyFlightListUsesPlaceholder(t *testing.T) {
	flights := &stubFlights{options: nil}
	researcher := &stubResearcher{out: "RESEARCH NOTES"}
	stays := &stubFinder{out: "STAY NOTES"}
	planner := &stubPlanner{out: "DAY BY DAY"}

	svc := NewService(flights, researcher, stays, planner, nil)
	p, err := svc.Generate(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(p.Document, placeholderFlights) {
		t.Error("expected flight placeholder when no options are found")
	}
}
