package handlers

import "strconv"

// atoiOr converts s to int, falling back to def on empty/garbled input.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
