package catalog

import (
	"strings"

	"github.com/dalemusser/learnhub/internal/domain/models"
)

// Filter returns the topics whose category matches category (or category is
// "All") and whose title or description contains query, ignoring case.
// The query is matched as given, with no trimming or accent folding. An empty
// query matches every topic. Order is preserved.
//
// The result is never nil, so an empty result encodes as [] in JSON.
func Filter(topics []models.Topic, query, category string) []models.Topic {
	q := strings.ToLower(query)
	out := make([]models.Topic, 0, len(topics))
	for _, t := range topics {
		if matchesCategory(t, category) && matchesQuery(t, q) {
			out = append(out, t)
		}
	}
	return out
}

func matchesCategory(t models.Topic, category string) bool {
	return category == models.CategoryAll || t.Category == category
}

// matchesQuery expects q already lowercased.
func matchesQuery(t models.Topic, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// Result is the outcome of Search: the matching topics plus the filter that
// produced them, so views can tell "nothing matched" from "nothing applied".
type Result struct {
	Topics   []models.Topic
	Query    string
	Category string
}

// Filtered reports whether a query or a category other than "All" was applied.
func (r Result) Filtered() bool {
	return r.Query != "" || r.Category != models.CategoryAll
}

// Empty reports whether no topic matched.
func (r Result) Empty() bool { return len(r.Topics) == 0 }

// Count returns the number of matching topics.
func (r Result) Count() int { return len(r.Topics) }

// Search filters the catalog for the UI. It trims surrounding whitespace from
// both inputs (a search box often carries a stray space) and a blank category
// selects "All".
func (c *Catalog) Search(query, category string) Result {
	query = strings.TrimSpace(query)
	category = strings.TrimSpace(category)
	if category == "" {
		category = models.CategoryAll
	}
	return Result{
		Topics:   Filter(c.topics, query, category),
		Query:    query,
		Category: category,
	}
}
