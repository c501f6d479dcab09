package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCityQueryLength bounds the free-text part of a geocoding search.
const MaxCityQueryLength = 100

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidCityQuery accepts a non-blank query of printable characters within the length limit
func IsValidCityQuery(query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > MaxCityQueryLength {
		return false
	}
	for _, r := range trimmed {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// IsValidCoordinate reports whether lat/lon fall inside the WGS84 ranges
func IsValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
