package plan

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func baseRequest() Request {
	return Request{
		Origin:        "BOM",
		Destination:   "DEL",
		Days:          5,
		Theme:         "Family Vacation",
		DepartureDate: testNow.AddDate(0, 0, 7),
		ReturnDate:    testNow.AddDate(0, 0, 12),
		Preferences:   "beaches, historical sites, local cuisine",
		Budget:        "Economy",
		HotelRating:   "Any",
	}
}

func TestValidate_OK(t *testing.T) {
	if verr := baseRequest().Validate(testNow); verr != nil {
		t.Fatalf("expected valid request, got %v", verr.Issues)
	}
}

func TestValidate_IATACodes(t *testing.T) {
	cases := []struct {
		name   string
		origin string
		want   string
	}{
		{"empty", "", "cannot be empty"},
		{"too short", "BO", "exactly 3 characters"},
		{"too long", "BOMB", "exactly 3 characters"},
		{"digits", "B0M", "only letters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			req.Origin = tc.origin
			verr := req.Validate(testNow)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if !containsIssue(verr.Issues, tc.want) {
				t.Errorf("issues %v missing %q", verr.Issues, tc.want)
			}
		})
	}
}

func TestValidate_SameOriginAndDestination(t *testing.T) {
	req := baseRequest()
	req.Destination = "bom" // case-insensitive match
	verr := req.Validate(testNow)
	if verr == nil || !containsIssue(verr.Issues, "must be different") {
		t.Errorf("expected same-airport issue, got %v", verr)
	}
}

func TestValidate_Dates(t *testing.T) {
	req := baseRequest()
	req.DepartureDate = testNow.AddDate(0, 0, -1)
	if verr := req.Validate(testNow); verr == nil || !containsIssue(verr.Issues, "in the past") {
		t.Errorf("expected past-departure issue, got %v", verr)
	}

	req = baseRequest()
	req.ReturnDate = req.DepartureDate.AddDate(0, 0, -2)
	if verr := req.Validate(testNow); verr == nil || !containsIssue(verr.Issues, "after departure") {
		t.Errorf("expected return-before-departure issue, got %v", verr)
	}

	req = baseRequest()
	req.DepartureDate = testNow.AddDate(0, 0, 400)
	req.ReturnDate = req.DepartureDate.AddDate(0, 0, 5)
	if verr := req.Validate(testNow); verr == nil || !containsIssue(verr.Issues, "1 year in advance") {
		t.Errorf("expected horizon issue, got %v", verr)
	}
}

// A same-day departure stays valid even when the server clock has already
// crossed midnight in UTC but not in its own zone.
func TestValidate_SameDayDepartureInWesternZone(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, zone) // 2026-03-02 01:00 UTC

	req := baseRequest()
	req.DepartureDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	req.ReturnDate = req.DepartureDate.AddDate(0, 0, 5)

	if verr := req.Validate(now); verr != nil {
		t.Fatalf("same-day departure should be valid, got %v", verr.Issues)
	}
}

func TestValidate_TripDuration(t *testing.T) {
	for _, days := range []int{0, 15} {
		req := baseRequest()
		req.Days = days
		if verr := req.Validate(testNow); verr == nil || !containsIssue(verr.Issues, "trip duration") {
			t.Errorf("days=%d: expected duration issue, got %v", days, verr)
		}
	}
}

func TestValidate_Preferences(t *testing.T) {
	req := baseRequest()
	req.Preferences = "   hiking  " // under 10 chars after trimming
	if verr := req.Validate(testNow); verr == nil || !containsIssue(verr.Issues, "activity preferences") {
		t.Errorf("expected preferences issue, got %v", verr)
	}
}

func containsIssue(issues []string, substr string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, substr) {
			return true
		}
	}
	return false
}
