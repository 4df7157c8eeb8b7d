package models

import (
	"math"
	"strconv"
	"strings"
)

// Number is a numeric wire field decoded leniently. JSON numbers and numeric
// strings decode to their value, booleans to 1 or 0, and null, empty or
// unparseable input to 0. Decoding a Number never fails.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = parseNumber(string(b))
	return nil
}

func parseNumber(raw string) Number {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return 0
		}
		s = strings.TrimSpace(unq)
	}
	switch s {
	case "", "null":
		return 0
	case "true":
		return 1
	case "false":
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Number(f)
}

// Float64 returns the value as float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// Int truncates the value toward zero.
func (n Number) Int() int {
	return int(n)
}
