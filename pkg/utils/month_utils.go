package utils

import (
	"fmt"
	"strings"
)

// CanonicalMonths are the only month values accepted anywhere in the system.
var CanonicalMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NormalizeMonth matches case-insensitively and returns the canonical
// spelling, so "july" and "July" store and cache identically.
func NormalizeMonth(month string) (string, bool) {
	trimmed := strings.TrimSpace(month)
	for _, m := range CanonicalMonths {
		if strings.EqualFold(trimmed, m) {
			return m, true
		}
	}
	return "", false
}

// FormatClock renders an HH:MM time string. Hours are not wrapped at 24; a
// slot ending past midnight keeps its arithmetic value.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
