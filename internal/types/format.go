// README: Display formatting helpers for durations and timestamps.
package types

import (
	"fmt"
	"time"
)

// FormatDuration converts a duration in minutes to a compact form,
// e.g. 150 -> "2h 30m", 120 -> "2h", 45 -> "45m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "N/A"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// timeLayouts are the formats flight APIs have been observed to return.
var timeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// FormatTimestamp renders an API timestamp for display,
// e.g. "2025-03-06 18:20" -> "Mar-06, 2025 | 6:20 PM".
// Unparseable input is returned unchanged.
func FormatTimestamp(raw string) string {
	if raw == "" || raw == "N/A" {
		return "N/A"
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan-02, 2006 | 3:04 PM")
		}
	}
	return raw
}
