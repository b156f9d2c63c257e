package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatUSD formats a float64 amount into US dollar notation with comma
// thousands grouping and exactly 2 decimal places (e.g. $1,234,567.89).
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatDecimalUSD formats one of the backend's decimal strings as dollars.
// A nil or unparseable value renders as a placeholder: a missing figure is
// an empty state, not an error.
func FormatDecimalUSD(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return "—"
	}
	return FormatUSD(v)
}

// FormatScore renders a nullable score string with one decimal place, or a
// placeholder when the backend has not computed it yet.
func FormatScore(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatCount formats an integer with comma thousands grouping.
func FormatCount(n int) string {
	negative := n < 0
	if negative {
		n = -n
	}
	out := groupThousands(strconv.Itoa(n))
	if negative {
		return "-" + out
	}
	return out
}

// FormatDate renders one of the backend's RFC 3339 timestamps as a short
// display date.
func FormatDate(iso string) string {
	if iso == "" {
		return "—"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "—"
	}
	return t.Format("02 Jan 2006")
}
