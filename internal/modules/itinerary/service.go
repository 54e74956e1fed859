// README: Planner agent builds the day-by-day itinerary from earlier agent output.
package itinerary

import (
	"context"
	"fmt"
	"strings"
)

// Generator is the slice of the LLM provider this agent needs.
type Generator interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

// Request combines the trip parameters with the upstream agent outputs.
type Request struct {
	Destination string
	Days        int
	Theme       string
	Preferences string
	Budget      string

	// ResearchNotes and StayNotes are the markdown outputs of the research
	// and finder agents, passed downstream unchanged.
	ResearchNotes string
	StayNotes     string
}

type Service struct {
	llm   Generator
	model string
}

func NewService(llm Generator, model string) *Service {
	return &Service{llm: llm, model: model}
}

// BuildItinerary produces the day-by-day plan in markdown.
func (s *Service) BuildItinerary(ctx context.Context, req Request) (string, error) {
	return s.llm.Generate(ctx, s.model, buildPrompt(req))
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(`You are an expert travel itinerary planner. Create
realistic day-by-day schedules with appropriate time allocations, transport
options and estimated travel times between locations, estimated costs for
activities and meals, and time for rest and spontaneous exploration. Do not
overpack the schedule. Consider opening hours and booking requirements.

Create a detailed %d-day itinerary for a %s trip to %s.

Travel details:
- Duration: %d days
- Trip type: %s
- Activities preferred: %s
- Budget: %s

Research data:
%s

Hotels & restaurants:
%s

Create a day-by-day itinerary with morning, afternoon and evening activities,
specific attractions with estimated time needed, restaurant recommendations
for meals, transportation suggestions, estimated costs, and one flexible or
rest slot each day.

Format each day clearly as:
**Day X: [Theme/Focus]**
- Morning: [Activity] (Time, Cost, Details)
- Afternoon: [Activity] (Time, Cost, Details)
- Evening: [Activity] (Time, Cost, Details)

Keep it practical, realistic, and exciting!`,
		req.Days, strings.ToLower(req.Theme), req.Destination,
		req.Days, req.Theme, req.Preferences, req.Budget,
		req.ResearchNotes, req.StayNotes)
}
