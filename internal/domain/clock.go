package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Clock values are minutes since midnight. Keeping them as plain ints keeps
// the delivery-time arithmetic exact and trivially comparable.

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("parse clock %q: %w", s, ErrTimeFormat)
	}

	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	mins, _ := strconv.Atoi(parts[1])

	return hours*60 + mins, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
// Values past 24h still render ("25:30"); elapsed simulation clocks are
// allowed to run beyond midnight and this is not a wrapping wall clock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
