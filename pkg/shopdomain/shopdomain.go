// Package shopdomain normalizes and validates e-commerce store domains used
// as attribution keys in the affiliate pipeline.
package shopdomain

import "strings"

// Normalize trims whitespace and lowercases a shop domain.
func Normalize(shop string) string {
	return strings.ToLower(strings.TrimSpace(shop))
}

// Valid reports whether a normalized shop domain looks usable as an
// attribution key: a bare domain, not a URL, with at least one dot.
func Valid(shop string) bool {
	if shop == "" {
		return false
	}
	if strings.HasPrefix(shop, "http://") || strings.HasPrefix(shop, "https://") {
		return false
	}
	if !strings.Contains(shop, ".") {
		return false
	}
	return len(shop) >= 5
}
