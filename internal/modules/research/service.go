// README: Research agent gathers destination information grounded by web search.
package research

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

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

// Request carries the trip parameters relevant to destination research.
type Request struct {
	Destination string
	Days        int
	Theme       string
	Preferences string
	Budget      string
}

type Service struct {
	llm   Generator
	web   WebSearcher
	model string
}

func NewService(llm Generator, web WebSearcher, model string) *Service {
	return &Service{llm: llm, web: web, model: model}
}

// Research produces a markdown destination guide. Web search failures are
// tolerated; the agent then answers from model knowledge alone.
func (s *Service) Research(ctx context.Context, req Request) (string, error) {
	var findings []search.WebResult
	if s.web != nil {
		query := fmt.Sprintf("%s travel guide top attractions %s", req.Destination, strings.ToLower(req.Theme))
		hits, err := s.web.WebSearch(ctx, query, 5)
		if err != nil {
			log.Printf("research web grounding failed: %v", err)
		} else {
			findings = hits
		}
	}

	return s.llm.Generate(ctx, s.model, buildPrompt(req, findings))
}

func buildPrompt(req Request, findings []search.WebResult) string {
	return fmt.Sprintf(`You are an expert travel researcher. Today is %s.
Gather detailed destination information: climate and best time to visit,
culture and local customs, safety tips, popular attractions and hidden gems.
Prioritize reliable sources. Keep responses concise but informative, in
well-structured markdown.

Research the best attractions and activities in %s for a %d-day %s trip.

Travel preferences:
- Activities interested in: %s
- Budget: %s
- Trip duration: %d days

Web search findings (use as grounding, cite nothing):
%s

Please provide:
1. Overview of %s (climate, culture, best time to visit)
2. Top 5-7 must-visit attractions suitable for this trip type
3. Recommended activities based on preferences
4. Local dining recommendations
5. Safety tips and travel advice
6. Estimated daily budget for activities

Keep the response well-organized and practical.`,
		time.Now().Format("January 2, 2006"),
		req.Destination, req.Days, strings.ToLower(req.Theme),
		req.Preferences, req.Budget, req.Days,
		search.Digest(findings),
		req.Destination)
}
