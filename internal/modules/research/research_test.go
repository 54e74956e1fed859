package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voyago/internal/search"
)

type stubGenerator struct {
	out        string
	err        error
	lastModel  string
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, model, prompt string) (string, error) {
	s.lastModel = model
	s.lastPrompt = prompt
	return s.out, s.err
}

type stubWeb struct {
	results []search.WebResult
	err     error
}

func (s *stubWeb) WebSearch(_ context.Context, _ string, _ int) ([]search.WebResult, error) {
	return s.results, s.err
}

func testRequest() Request {
	return Request{
		Destination: "DEL",
		Days:        5,
		Theme:       "Solo Exploration",
		Preferences: "historical sites, street food",
		Budget:      "Standard",
	}
}

func TestResearch_PromptCarriesTripContextAndGrounding(t *testing.T) {
	llm := &stubGenerator{out: "guide"}
	web := &stubWeb{results: []search.WebResult{
		{Title: "Red Fort", Link: "https://example.com", Snippet: "Mughal fort complex."},
	}}

	svc := NewService(llm, web, "gemini-2.0-flash")
	out, err := svc.Research(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "guide" {
		t.Errorf("got %q, want generator output", out)
	}
	if llm.lastModel != "gemini-2.0-flash" {
		t.Errorf("got model %q", llm.lastModel)
	}

	for _, want := range []string{"DEL", "5-day", "solo exploration", "historical sites, street food", "Standard", "Red Fort"} {
		if !strings.Contains(llm.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

// A web search failure must not fail the agent; it answers ungrounded.
func TestResearch_WebFailureIsTolerated(t *testing.T) {
	llm := &stubGenerator{out: "guide"}
	web := &stubWeb{err: errors.New("search quota exhausted")}

	svc := NewService(llm, web, "gemini-2.0-flash")
	out, err := svc.Research(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "guide" {
		t.Errorf("got %q, want generator output", out)
	}
	if !strings.Contains(llm.lastPrompt, "No web search findings") {
		t.Error("prompt should note the missing grounding")
	}
}

func TestResearch_GeneratorErrorPropagates(t *testing.T) {
	llm := &stubGenerator{err: errors.New("model overloaded")}
	svc := NewService(llm, &stubWeb{}, "gemini-2.0-flash")

	if _, err := svc.Research(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error")
	}
}
