// internal/domain/models/category.go
package models

// Canonical topic category identifiers.
//
// These values appear in content files, in the Mongo topics collection and in
// the ?category= query parameter. They are matched with exact equality.
const (
	CategoryBasic        = "Basic"
	CategoryIntermediate = "Intermediate"
	CategoryAdvanced     = "Advanced"
)

// CategoryAll is the selector that matches every category. It is never a
// valid category on a Topic.
const CategoryAll = "All"

// Categories is the closed set of topic categories, in display order.
var Categories = []string{
	CategoryBasic,
	CategoryIntermediate,
	CategoryAdvanced,
}

// CategorySelectors is the list of filter buttons shown on the catalog page.
var CategorySelectors = []string{
	CategoryAll,
	CategoryBasic,
	CategoryIntermediate,
	CategoryAdvanced,
}

// IsValidCategory reports whether c is one of Categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Difficulty bounds. Difficulty is an ordinal: 1 easy, 2 medium, 3 hard.
const (
	MinDifficulty = 1
	MaxDifficulty = 3
)
