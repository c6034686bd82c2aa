package chessfeed

import (
	"strconv"
	"strings"
)

// NormalizeTimeControl converts a raw "seconds[+increment]" time control into
// its display form: an initial of 900 seconds becomes "15" minutes while the
// increment stays in seconds, so "900+10" renders as "15+10". Sub-minute
// initials stay in seconds ("30+0" is left alone). Fractional minutes are
// truncated. Anything that does not parse is returned unchanged.
func NormalizeTimeControl(raw string) string {
	tc := strings.TrimSpace(raw)
	if tc == "" || tc == Unknown {
		return Unknown
	}

	initial, increment, hasIncrement := strings.Cut(tc, "+")
	base, err := strconv.Atoi(initial)
	if err != nil {
		return raw
	}

	display := initial
	if base >= 60 {
		display = strconv.Itoa(base / 60)
	}

	if !hasIncrement {
		return display
	}
	if _, err := strconv.Atoi(increment); err != nil {
		return raw
	}
	return display + "+" + increment
}
