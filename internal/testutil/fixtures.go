package testutil

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.uber.org/zap"
)

// EmbeddedCatalog builds the catalog shipped in the binary.
func EmbeddedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := content.LoadEmbedded(zap.NewNop())
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	return c
}

// EmbeddedHolder wraps EmbeddedCatalog in a Holder.
func EmbeddedHolder(t *testing.T) *catalog.Holder {
	t.Helper()
	return catalog.NewHolder(EmbeddedCatalog(t))
}

// SmallCatalog builds a three-topic catalog with content for the first two.
func SmallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	topics := []models.Topic{
		{ID: "alpha", Title: "Alpha", Description: "First steps", Category: models.CategoryBasic, Difficulty: 1, Duration: "10 min", Icon: "A"},
		{ID: "beta", Title: "Beta", Description: "Next steps", Category: models.CategoryIntermediate, Difficulty: 2, Duration: "20 min", Icon: "B"},
		{ID: "gamma", Title: "Gamma", Description: "Deep dive", Category: models.CategoryAdvanced, Difficulty: 3, Duration: "30 min", Icon: "C"},
	}
	contents := []models.TopicContent{
		{
			ID: "alpha", Title: "Alpha", Description: "First steps", Category: models.CategoryBasic, Difficulty: 1, Duration: "10 min", Icon: "A",
			Overview:  "Alpha <strong>overview</strong>",
			Concepts:  []string{"one", "two"},
			KeyPoints: []string{"remember"},
			CodeExamples: []models.CodeExample{
				{Title: "Hello", Code: `Console.WriteLine("Hello");`, Explanation: "Prints hello"},
				{Title: "Generic", Code: "List<int> xs = new();", Explanation: "A list"},
			},
			Exercises: []models.Exercise{{Title: "Try it", Description: "Print your name", Hint: "Use WriteLine"}},
		},
		{
			ID: "beta", Title: "Beta", Description: "Next steps", Category: models.CategoryIntermediate, Difficulty: 2, Duration: "20 min", Icon: "B",
			Overview: "Beta overview",
		},
	}
	c, err := catalog.New(topics, contents)
	if err != nil {
		t.Fatalf("build small catalog: %v", err)
	}
	return c
}
