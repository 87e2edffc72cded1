// Package greeting maps wall-clock time to the header strings: a
// zero-padded HH:MM:SS clock and a time-of-day greeting.
package greeting

import "time"

// ForHour picks the greeting band for a local hour in [0,24).
func ForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}

// Clock formats t as zero-padded HH:MM:SS in t's location.
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}
