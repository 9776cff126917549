package menu

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel category that matches every item. It is never
// part of the data itself.
const CategoryAll = "All"

// Filter returns the items visible for the given category and search text,
// preserving the original relative order. Items flagged unavailable are
// excluded before any matching happens. Category matching is a case-sensitive
// exact match unless the sentinel is active; search matching is a
// case-insensitive substring check against name, description and tags.
func Filter(items []Item, category, search string) []Item {
	q := strings.ToLower(strings.TrimSpace(search))
	visible := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.IsAvailable() {
			continue
		}
		if category != CategoryAll && it.Category != category {
			continue
		}
		if q != "" && !matchesSearch(it, q) {
			continue
		}
		visible = append(visible, it)
	}
	return visible
}

func matchesSearch(it Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Categories returns the distinct category values present in items, sorted
// lexicographically ascending. The full sequence is considered, availability
// flags included, mirroring the category selector being built from the loaded
// document rather than the filtered view. Callers prepend the CategoryAll
// sentinel when offering the result to users.
func Categories(items []Item) []string {
	seen := make(map[string]struct{}, len(items))
	cats := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		cats = append(cats, it.Category)
	}
	sort.Strings(cats)
	return cats
}
