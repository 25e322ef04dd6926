package ingest

import (
	"math"
	"strconv"
	"strings"
)

// cleanField trims whitespace and strips wrapping quote characters.
// Empty-value artifacts exported as a run of literal quotes ("", """")
// normalize to the empty string.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.Trim(s, `"`) == "" {
		return ""
	}
	return strings.TrimSpace(strings.Trim(s, `"`))
}

// parseScore maps a raw cell onto the closed five-point scale.
// Empty cells yield (nil, ""): absent is not an error. Non-numeric or
// out-of-range values yield nil plus a warning reason. In-range
// fractional values round to the nearest integer.
func parseScore(raw string) (*int, string) {
	s := cleanField(raw)
	if s == "" {
		return nil, ""
	}

	// Accept decimal comma, common in the source exports.
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, ReasonNonNumeric
	}
	if f < 1 || f > 5 {
		return nil, ReasonOutOfRange
	}

	v := int(math.Round(f))
	return &v, ""
}
