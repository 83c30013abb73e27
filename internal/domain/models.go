package domain

import "strings"

// Item is a selectable combobox entry
type Item struct {
	Name     string   `yaml:"name" toml:"name"`
	Value    string   `yaml:"value" toml:"value"` // unique key
	Keywords []string `yaml:"keywords,omitempty" toml:"keywords,omitempty"`
}

// KeywordList returns the keywords joined for display
func (i Item) KeywordList() string {
	return strings.Join(i.Keywords, ", ")
}

// Values extracts the value keys from a list of items, preserving order
func Values(items []Item) []string {
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, item.Value)
	}
	return values
}

// Names extracts the display names from a list of items, preserving order
func Names(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
