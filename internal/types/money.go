// README: Common money value object used across modules.
package types

import "fmt"

type Money struct {
	Amount   int64
	Currency string
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"TWD": "NT$",
}

// Format renders the amount with its currency symbol and thousands
// separators, e.g. {12500, "INR"} -> "₹12,500".
func (m Money) Format() string {
	if m.Amount == 0 {
		return "Not Available"
	}
	symbol, ok := currencySymbols[m.Currency]
	if !ok {
		symbol = m.Currency + " "
	}
	return symbol + groupDigits(m.Amount)
}

func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
