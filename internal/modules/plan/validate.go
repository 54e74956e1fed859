// README: Request validation rules applied before any external call.
package plan

import (
	"fmt"
	"strings"
	"time"
)

const (
	minTripDays        = 1
	maxTripDays        = 14
	maxBookingHorizon  = 365 * 24 * time.Hour
	minPreferenceChars = 10
)

// Validate checks the request against the booking rules. now is injected so
// date checks are testable. A nil return means the request is acceptable.
func (r Request) Validate(now time.Time) *ValidationError {
	var issues []string

	if msg := checkIATA(r.Origin); msg != "" {
		issues = append(issues, "departure: "+msg)
	}
	if msg := checkIATA(r.Destination); msg != "" {
		issues = append(issues, "destination: "+msg)
	}
	if r.Origin != "" && strings.EqualFold(r.Origin, r.Destination) {
		issues = append(issues, "departure and destination must be different")
	}

	if r.Days < minTripDays || r.Days > maxTripDays {
		issues = append(issues, fmt.Sprintf("trip duration must be between %d and %d days", minTripDays, maxTripDays))
	}

	// Today is the calendar date where the request is made. Truncating the
	// absolute time instead would shift the day boundary by the zone offset
	// and reject same-day departures near midnight.
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if r.DepartureDate.Before(today) {
		issues = append(issues, "departure date cannot be in the past")
	}
	if r.ReturnDate.Before(r.DepartureDate) {
		issues = append(issues, "return date must be after departure date")
	}
	if r.DepartureDate.Sub(today) > maxBookingHorizon {
		issues = append(issues, "cannot plan more than 1 year in advance")
	}

	if len(strings.TrimSpace(r.Preferences)) < minPreferenceChars {
		issues = append(issues, "please describe your activity preferences in a little more detail")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// checkIATA returns a problem description, or "" for a valid 3-letter code.
func checkIATA(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "airport code cannot be empty"
	}
	if len(code) != 3 {
		return "airport code must be exactly 3 characters"
	}
	for _, c := range code {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "airport code must contain only letters"
		}
	}
	return ""
}
