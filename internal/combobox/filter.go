package combobox

import (
	"strings"

	"combobox/internal/domain"
)

// normalizeQuery trims and lowercases a raw query
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether item matches query: a case-insensitive substring
// of the name or of any keyword. An empty query matches everything.
func Matches(item domain.Item, query string) bool {
	return matchesNormalized(item, normalizeQuery(query))
}

func matchesNormalized(item domain.Item, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	for _, k := range item.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

// Filter returns the ordered subsequence of items matching query.
// An empty query returns items unchanged.
func Filter(items []domain.Item, query string) []domain.Item {
	q := normalizeQuery(query)
	if q == "" {
		return items
	}

	var result []domain.Item
	for _, item := range items {
		if matchesNormalized(item, q) {
			result = append(result, item)
		}
	}
	return result
}
