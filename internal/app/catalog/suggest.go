package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Suggest returns up to limit catalog topics whose ID is close to id, closest
// first. It backs the "did you mean" list on the not-found page.
//
// A topic qualifies when one ID contains the other, or when the edit distance
// is at most a third of the requested ID's length (minimum 2).
func (c *Catalog) Suggest(id string, limit int) []models.Topic {
	want := text.Fold(strings.TrimSpace(id))
	if want == "" || limit <= 0 {
		return nil
	}

	maxDist := len(want) / 3
	if maxDist < 2 {
		maxDist = 2
	}

	type candidate struct {
		topic models.Topic
		dist  int
	}
	var found []candidate
	for _, t := range c.topics {
		have := text.Fold(t.ID)
		if have == want {
			continue
		}
		d := levenshtein.ComputeDistance(want, have)
		if d <= maxDist || strings.Contains(have, want) || strings.Contains(want, have) {
			found = append(found, candidate{topic: t, dist: d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]models.Topic, len(found))
	for i, f := range found {
		out[i] = f.topic
	}
	return out
}
