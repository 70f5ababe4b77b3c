package content_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadEmbedded(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := content.LoadEmbedded(zap.NewNop())
	require.NoError(t, err)
	return c
}

func topicIDs(ts []models.Topic) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestLoadEmbedded_Counts(t *testing.T) {
	c := loadEmbedded(t)

	withContent, total := c.Coverage()
	assert.Equal(t, 15, total)
	assert.Equal(t, 6, withContent)

	for _, tp := range c.Topics() {
		assert.False(t, tp.Completed, "%s should not be completed", tp.ID)
	}
}

func TestLoadEmbedded_SearchLoop(t *testing.T) {
	c := loadEmbedded(t)

	got := catalog.Filter(c.Topics(), "Loop", models.CategoryAll)
	assert.Equal(t, []string{"loops"}, topicIDs(got))
}

func TestLoadEmbedded_AdvancedCategory(t *testing.T) {
	c := loadEmbedded(t)

	got := catalog.Filter(c.Topics(), "", models.CategoryAdvanced)
	assert.Equal(t,
		[]string{"generics", "linq", "async-await", "delegates-events", "reflection"},
		topicIDs(got))
}

func TestLoadEmbedded_IdentityFilter(t *testing.T) {
	c := loadEmbedded(t)

	all := c.Topics()
	assert.Equal(t, all, catalog.Filter(all, "", models.CategoryAll))
}

func TestLoadEmbedded_VariablesDatatypes(t *testing.T) {
	c := loadEmbedded(t)

	tc, ok := c.Resolve("variables-datatypes")
	require.True(t, ok)
	assert.Len(t, tc.Concepts, 5)
	assert.Len(t, tc.CodeExamples, 2)
	assert.Equal(t, "Type Conversion", tc.CodeExamples[1].Title)
	assert.Contains(t, tc.CodeExamples[0].Code, `string firstName = "John";`)
	assert.Equal(t, "Variables & Data Types", tc.Title)
}

func TestLoadEmbedded_UncoveredTopicsAreNotFound(t *testing.T) {
	c := loadEmbedded(t)

	for _, id := range []string{"inheritance", "generics", "reflection"} {
		_, inCatalog := c.Topic(id)
		assert.True(t, inCatalog, id)
		_, ok := c.Resolve(id)
		assert.False(t, ok, id)
	}
}

func TestLoadEmbedded_CodeKeepsGenerics(t *testing.T) {
	c := loadEmbedded(t)

	tc, ok := c.Resolve("arrays-collections")
	require.True(t, ok)
	assert.Contains(t, tc.CodeExamples[0].Code, "List<string> fruits = new List<string>();")
	assert.Contains(t, tc.KeyPoints, "Use List<T> for most collection needs")
}

const validCatalog = `
topics:
  - id: loops
    title: Loops
    description: For and while
    category: Basic
    difficulty: 1
    duration: 40 min
    icon: "🔁"
  - id: linq
    title: LINQ
    description: Queries
    category: Advanced
    difficulty: 3
    duration: 65 min
`

const validLoops = `
id: loops
title: Loops
overview: Loops repeat code.
concepts: [for, while]
code_examples:
  - title: For
    code: "for (;;) {}"
exercises:
  - title: Count
    description: Count to ten
key_points: [break exits]
`

func TestRead_InheritsMetadataFromCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml":      {Data: []byte(validCatalog)},
		"topics/loops.yaml": {Data: []byte(validLoops)},
		"topics/notes.txt":  {Data: []byte("ignored")},
	}

	b, err := content.Read(fsys)
	require.NoError(t, err)
	require.Len(t, b.Contents, 1)

	tc := b.Contents[0]
	assert.Equal(t, models.CategoryBasic, tc.Category)
	assert.Equal(t, 1, tc.Difficulty)
	assert.Equal(t, "40 min", tc.Duration)
	assert.Equal(t, "🔁", tc.Icon)
	assert.Equal(t, "For and while", tc.Description)
}

func TestRead_NoTopicsDir(t *testing.T) {
	fsys := fstest.MapFS{"catalog.yaml": {Data: []byte(validCatalog)}}

	b, err := content.Read(fsys)
	require.NoError(t, err)
	assert.Len(t, b.Topics, 2)
	assert.Empty(t, b.Contents)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{"catalog schema violation", fstest.MapFS{
			"catalog.yaml": {Data: []byte("topics:\n  - id: loops\n    title: Loops\n    category: Expert\n")},
		}},
		{"catalog not yaml", fstest.MapFS{
			"catalog.yaml": {Data: []byte("topics: [unterminated")},
		}},
		{"catalog unknown field", fstest.MapFS{
			"catalog.yaml": {Data: []byte(validCatalog + "extra: true\n")},
		}},
		{"difficulty out of range", fstest.MapFS{
			"catalog.yaml": {Data: []byte("topics:\n  - {id: a, title: A, description: d, category: Basic, difficulty: 5, duration: 1 min}\n")},
		}},
		{"topic id mismatch", fstest.MapFS{
			"catalog.yaml":     {Data: []byte(validCatalog)},
			"topics/linq.yaml": {Data: []byte(validLoops)},
		}},
		{"topic missing overview", fstest.MapFS{
			"catalog.yaml":      {Data: []byte(validCatalog)},
			"topics/loops.yaml": {Data: []byte("id: loops\ntitle: Loops\nconcepts: []\ncode_examples: []\nexercises: []\nkey_points: []\n")},
		}},
		{"empty topic file", fstest.MapFS{
			"catalog.yaml":      {Data: []byte(validCatalog)},
			"topics/loops.yaml": {Data: []byte("")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.Read(tt.files)
			require.Error(t, err)
			assert.True(t, errors.Is(err, content.ErrInvalidContent), "got %v", err)
		})
	}
}

func TestRead_MissingCatalog(t *testing.T) {
	_, err := content.Read(fstest.MapFS{})
	require.Error(t, err)
}

func TestLoad_ContentWithoutCatalogEntry(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte("topics:\n  - {id: linq, title: LINQ, description: q, category: Advanced, difficulty: 3, duration: 1 min}\n")},
		"topics/loops.yaml": {Data: []byte(validLoops)},
	}

	_, err := content.Load(fsys, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog), "got %v", err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "topics"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(validCatalog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "topics", "loops.yaml"), []byte(validLoops), 0o644))

	c, err := content.LoadDir(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.HasContent("loops"))
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := content.LoadDir(filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	require.Error(t, err)
}
