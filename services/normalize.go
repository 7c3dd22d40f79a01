package services

import (
	"math"
	"strconv"
	"strings"
)

// CleanText strips non-breaking spaces and outer whitespace. Roster cells
// pasted from spreadsheets routinely carry NBSP padding that breaks joins.
func CleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
}

// NormalizeMemberID returns the canonical member id: cleaned, and numeric
// forms collapsed ("12345.0" -> "12345"). Non-numeric ids pass through.
func NormalizeMemberID(v string) string {
	s := CleanText(v)
	if s == "" {
		return ""
	}
	switch strings.ToLower(s) {
	case "nan", "none":
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Round2 applies the fixed two-decimal policy used for hours everywhere.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
