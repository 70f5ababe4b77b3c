package catalog

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func ids(ts []models.Topic) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	topics := sampleTopics()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"identity", "", models.CategoryAll, []string{"variables", "loops", "classes", "linq"}},
		{"title match ignores case", "LOOP", models.CategoryAll, []string{"loops"}},
		{"description match", "constructors", models.CategoryAll, []string{"classes"}},
		{"title or description", "for", models.CategoryAll, []string{"loops"}},
		{"category only", "", models.CategoryBasic, []string{"variables", "loops"}},
		{"category and query", "query", models.CategoryAdvanced, []string{"linq"}},
		{"category excludes match", "query", models.CategoryBasic, []string{}},
		{"no match", "zzz", models.CategoryAll, []string{}},
		{"trailing space is literal", "while ", models.CategoryAll, []string{}},
		{"inner space matches", "for and", models.CategoryAll, []string{"loops"}},
		{"accents are not folded", "Lóops", models.CategoryAll, []string{}},
		{"unknown selector matches nothing", "", "Expert", []string{}},
		{"blank selector is not all", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(topics, tt.query, tt.category)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_IsOrderedSubsequence(t *testing.T) {
	topics := sampleTopics()
	queries := []string{"", "o", "s", "LIN", "and", "x"}

	for _, q := range queries {
		for _, cat := range models.CategorySelectors {
			got := Filter(topics, q, cat)
			// every result appears in topics, at strictly increasing positions
			pos := -1
			for _, g := range got {
				found := -1
				for i := pos + 1; i < len(topics); i++ {
					if topics[i].ID == g.ID {
						found = i
						break
					}
				}
				if found < 0 {
					t.Fatalf("Filter(%q, %q): %s out of order or not in input", q, cat, g.ID)
				}
				pos = found
			}
		}
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	topics := sampleTopics()
	_ = Filter(topics, "loops", models.CategoryBasic)
	assert.Equal(t, sampleTopics(), topics)
}

func TestSearch_Result(t *testing.T) {
	c := newSample(t)

	r := c.Search("", "")
	assert.Equal(t, models.CategoryAll, r.Category)
	assert.False(t, r.Filtered())
	assert.False(t, r.Empty())
	assert.Equal(t, 4, r.Count())

	r = c.Search("  nothing-here ", models.CategoryAll)
	assert.Equal(t, "nothing-here", r.Query)
	assert.True(t, r.Filtered())
	assert.True(t, r.Empty())

	// Search trims what Filter would match literally.
	r = c.Search(" while ", models.CategoryAll)
	assert.Equal(t, []string{"loops"}, ids(r.Topics))

	r = c.Search("", models.CategoryIntermediate)
	assert.True(t, r.Filtered())
	assert.Equal(t, []string{"classes"}, ids(r.Topics))
}

func TestSuggest(t *testing.T) {
	c := newSample(t)

	got := c.Suggest("loop", 3)
	assert.Equal(t, []string{"loops"}, ids(got))

	got = c.Suggest("lnq", 3)
	assert.Equal(t, []string{"linq"}, ids(got))

	assert.Empty(t, c.Suggest("", 3))
	assert.Empty(t, c.Suggest("loops", 0))
	assert.Empty(t, c.Suggest("completely-unrelated-identifier", 3))
}

func TestSuggest_ExcludesExactAndLimits(t *testing.T) {
	c := newSample(t)

	// "loops" itself is excluded; nothing else is close enough.
	assert.Empty(t, c.Suggest("loops", 3))

	got := c.Suggest("s", 1)
	assert.Len(t, got, 1)
}
