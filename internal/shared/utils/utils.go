package utils

import (
	"strings"
	"time"
)

// TrimPtr returns a pointer to the trimmed value of s, or nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// Now returns the current UTC time at microsecond precision, which is what
// both supported stores can round-trip.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NextAfter returns Now, or prev+1µs when the clock has not moved past prev.
func NextAfter(prev time.Time) time.Time {
	now := Now()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
