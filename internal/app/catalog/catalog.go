// Package catalog holds the immutable topic catalog: the ordered list of
// topics shown on the landing page and the partial mapping from topic ID to
// learning content shown on the detail page.
//
// A Catalog is built once (see New) and never mutated afterwards, so it can be
// shared by concurrent handlers without locking. Reloading means building a
// new Catalog and swapping it in through a Holder.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/learnhub/internal/domain/models"
)

// ErrInvalidCatalog is wrapped by every construction error returned from New.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable snapshot of topics and their content records.
type Catalog struct {
	topics  []models.Topic
	index   map[string]int
	content map[string]models.TopicContent
}

// New validates topics and contents and builds a Catalog.
//
// Topic IDs must be unique and non-empty, categories must be one of
// models.Categories and difficulty must be within 1..3. Every content record
// must be keyed by a topic ID and obey the same category and difficulty rules;
// topics without content are allowed.
func New(topics []models.Topic, contents []models.TopicContent) (*Catalog, error) {
	c := &Catalog{
		topics:  make([]models.Topic, 0, len(topics)),
		index:   make(map[string]int, len(topics)),
		content: make(map[string]models.TopicContent, len(contents)),
	}

	for i, t := range topics {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("%w: topic at position %d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate topic id %q", ErrInvalidCatalog, t.ID)
		}
		if !models.IsValidCategory(t.Category) {
			return nil, fmt.Errorf("%w: topic %q has unknown category %q", ErrInvalidCatalog, t.ID, t.Category)
		}
		if t.Difficulty < models.MinDifficulty || t.Difficulty > models.MaxDifficulty {
			return nil, fmt.Errorf("%w: topic %q difficulty %d out of range", ErrInvalidCatalog, t.ID, t.Difficulty)
		}
		t.Position = i
		c.index[t.ID] = i
		c.topics = append(c.topics, t)
	}

	for _, tc := range contents {
		i, ok := c.index[tc.ID]
		if !ok {
			return nil, fmt.Errorf("%w: content %q has no catalog entry", ErrInvalidCatalog, tc.ID)
		}
		if _, dup := c.content[tc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate content for %q", ErrInvalidCatalog, tc.ID)
		}
		// Unset badge fields come from the catalog entry.
		if tc.Category == "" {
			tc.Category = c.topics[i].Category
		}
		if tc.Difficulty == 0 {
			tc.Difficulty = c.topics[i].Difficulty
		}
		if !models.IsValidCategory(tc.Category) {
			return nil, fmt.Errorf("%w: content %q has unknown category %q", ErrInvalidCatalog, tc.ID, tc.Category)
		}
		if tc.Difficulty < models.MinDifficulty || tc.Difficulty > models.MaxDifficulty {
			return nil, fmt.Errorf("%w: content %q difficulty %d out of range", ErrInvalidCatalog, tc.ID, tc.Difficulty)
		}
		c.content[tc.ID] = cloneContent(tc)
	}

	return c, nil
}

// Topics returns the catalog entries in catalog order. The slice is a copy.
func (c *Catalog) Topics() []models.Topic {
	out := make([]models.Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.topics) }

// Topic returns the catalog entry for id.
func (c *Catalog) Topic(id string) (models.Topic, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Topic{}, false
	}
	return c.topics[i], true
}

// Resolve returns the content record stored for id. The boolean is false when
// no content exists for id, which callers render as the "Topic Not Found" view.
func (c *Catalog) Resolve(id string) (models.TopicContent, bool) {
	tc, ok := c.content[id]
	if !ok {
		return models.TopicContent{}, false
	}
	return cloneContent(tc), true
}

// HasContent reports whether a content record exists for id.
func (c *Catalog) HasContent(id string) bool {
	_, ok := c.content[id]
	return ok
}

// Contents returns every content record in catalog order.
func (c *Catalog) Contents() []models.TopicContent {
	out := make([]models.TopicContent, 0, len(c.content))
	for _, t := range c.topics {
		if tc, ok := c.content[t.ID]; ok {
			out = append(out, cloneContent(tc))
		}
	}
	return out
}

// Coverage reports how many catalog entries have a content record.
func (c *Catalog) Coverage() (withContent, total int) {
	return len(c.content), len(c.topics)
}

// Progress is the "completed/total" figure shown in the page header.
type Progress struct {
	Completed int
	Total     int
}

// Progress counts completed topics. Nothing marks topics completed yet, so
// Completed is zero for every catalog loaded today.
func (c *Catalog) Progress() Progress {
	p := Progress{Total: len(c.topics)}
	for _, t := range c.topics {
		if t.Completed {
			p.Completed++
		}
	}
	return p
}

// Neighbors holds the topics before and after a topic in catalog order.
// Either pointer is nil at the ends of the catalog.
type Neighbors struct {
	Prev *models.Topic
	Next *models.Topic
}

// Adjacent returns the neighbors of id. It returns false if id is unknown.
func (c *Catalog) Adjacent(id string) (Neighbors, bool) {
	i, ok := c.index[id]
	if !ok {
		return Neighbors{}, false
	}
	var n Neighbors
	if i > 0 {
		prev := c.topics[i-1]
		n.Prev = &prev
	}
	if i < len(c.topics)-1 {
		next := c.topics[i+1]
		n.Next = &next
	}
	return n, true
}

func cloneContent(tc models.TopicContent) models.TopicContent {
	out := tc
	out.Concepts = append([]string(nil), tc.Concepts...)
	out.CodeExamples = append([]models.CodeExample(nil), tc.CodeExamples...)
	out.Exercises = append([]models.Exercise(nil), tc.Exercises...)
	out.KeyPoints = append([]string(nil), tc.KeyPoints...)
	return out
}
