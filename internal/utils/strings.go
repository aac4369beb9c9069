package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// SplitFullName splits a display name on the first space into first/last.
// A single word becomes the first name with an empty last name.
func SplitFullName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// CityFromTitle derives a city tab label from a tour title: the first token
// when split on common separators, falling back to the given country.
func CityFromTitle(title, country string) string {
	fields := strings.FieldsFunc(title, func(r rune) bool {
		return r == ' ' || r == ',' || r == '–' || r == '&'
	})
	if len(fields) == 0 {
		return country
	}
	city := strings.TrimSpace(fields[0])
	if city == "" {
		return country
	}
	return city
}
