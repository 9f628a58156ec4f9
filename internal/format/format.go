package format

import "strings"

// ParseDecimal extracts the leading decimal number from s, the way lenient
// front-end parsers do: "15.00" => 15, "12.5 usd" => 12.5, "abc" => not ok.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}
	var intPart, fracPart float64
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		intPart = intPart*10 + float64(s[i]-'0')
		digits++
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		scale := 0.1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			fracPart += float64(s[i]-'0') * scale
			scale /= 10
			digits++
			i++
		}
	}
	if digits == 0 {
		return 0, false
	}
	v := intPart + fracPart
	if neg {
		v = -v
	}
	return v, true
}

// Price renders a raw decimal price string for display.
// Merchant-entered precision is kept as-is: Price("11.25") => "$11.25".
func Price(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "0.00"
	}
	return "$" + s
}
