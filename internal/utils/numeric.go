// Package utils provides utility functions for the aircon subsidy engine.
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"aircon-subsidy-engine/internal/models"
)

// numericToken matches the first signed integer or decimal in a string.
// Comma and dot are both accepted as the decimal separator; anything
// after the digits (units, kanji suffixes) is truncated.
var numericToken = regexp.MustCompile(`[+-]?[0-9]+(?:[.,][0-9]+)?`)

// ParseLeadingNumber extracts the first numeric token from a free-text
// field ("2.5kW" -> 2.5, "2008年" -> 2008, "-3.1" -> -3.1). Leading
// non-numeric characters are skipped. Returns ErrNoNumericToken when the
// string contains no number at all; callers surface that to the user
// instead of defaulting the value.
func ParseLeadingNumber(s string) (float64, error) {
	token := numericToken.FindString(s)
	if token == "" {
		return 0, fmt.Errorf("%w: %q", models.ErrNoNumericToken, s)
	}

	token = strings.ReplaceAll(token, ",", ".")
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrNoNumericToken, s)
	}

	return value, nil
}

// ParseLeadingInt extracts the first numeric token and truncates it
// toward zero. Used for manufacture years.
func ParseLeadingInt(s string) (int, error) {
	value, err := ParseLeadingNumber(s)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// FormatNumber renders an integer with thousands separators for user
// facing messages (110000 -> "110,000").
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
