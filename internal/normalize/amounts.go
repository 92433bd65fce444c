package normalize

import (
	"strconv"
	"strings"
)

// currencyStripper removes currency symbols and thousands separators.
var currencyStripper = strings.NewReplacer("$", "", "£", "", "€", "", ",", "")

// ParseAmount converts a statement money string to a float. Currency
// symbols and thousands separators are stripped, and a value wrapped in
// parentheses is treated as negative (accounting convention). Anything
// that still fails to parse degrades to zero so that one malformed value
// never aborts a whole row.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.TrimSpace(currencyStripper.Replace(s))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if negative {
		v = -v
	}
	return v
}
