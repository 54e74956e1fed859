package types

import "testing"

func TestMoneyFormat(t *testing.T) {
	cases := []struct {
		money Money
		want  string
	}{
		{Money{Amount: 12500, Currency: "INR"}, "₹12,500"},
		{Money{Amount: 450, Currency: "USD"}, "$450"},
		{Money{Amount: 1234567, Currency: "JPY"}, "¥1,234,567"},
		{Money{Amount: 900, Currency: "AUD"}, "AUD 900"},
		{Money{Amount: 0, Currency: "USD"}, "Not Available"},
	}
	for _, tc := range cases {
		if got := tc.money.Format(); got != tc.want {
			t.Errorf("%+v: got %q, want %q", tc.money, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{150, "2h 30m"},
		{120, "2h"},
		{45, "45m"},
		{0, "N/A"},
		{-5, "N/A"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d): got %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2025-03-06 18:20", "Mar-06, 2025 | 6:20 PM"},
		{"2025-03-06T09:05:00", "Mar-06, 2025 | 9:05 AM"},
		{"", "N/A"},
		{"N/A", "N/A"},
		{"sometime soon", "sometime soon"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.raw); got != tc.want {
			t.Errorf("FormatTimestamp(%q): got %q, want %q", tc.raw, got, tc.want)
		}
	}
}
