// Package copyindicator tracks the transient "copied" state of code examples.
//
// Each example owns its own timer. Copying an example again stops that
// example's pending revert before arming a new one, and every arm carries a
// generation number so a timer that already fired cannot clear a newer mark.
package copyindicator

import (
	"sort"
	"sync"
	"time"
)

// DefaultTTL is how long an example shows as copied.
const DefaultTTL = 2 * time.Second

type entry struct {
	gen   uint64
	timer *time.Timer
}

// Indicator holds the copied flags for one page view. It is safe for
// concurrent use.
type Indicator struct {
	mu      sync.Mutex
	ttl     time.Duration
	seq     uint64
	entries map[string]*entry
	closed  bool
}

// New returns an Indicator whose marks revert after ttl. A non-positive ttl
// selects DefaultTTL.
func New(ttl time.Duration) *Indicator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Indicator{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// TTL returns the revert delay.
func (in *Indicator) TTL() time.Duration { return in.ttl }

// Copy marks exampleID as copied and (re)starts its revert timer.
// Marks on other examples are unaffected.
func (in *Indicator) Copy(exampleID string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return
	}
	if prev, ok := in.entries[exampleID]; ok {
		prev.timer.Stop()
	}

	in.seq++
	gen := in.seq
	in.entries[exampleID] = &entry{
		gen:   gen,
		timer: time.AfterFunc(in.ttl, func() { in.revert(exampleID, gen) }),
	}
}

func (in *Indicator) revert(exampleID string, gen uint64) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if e, ok := in.entries[exampleID]; ok && e.gen == gen {
		delete(in.entries, exampleID)
	}
}

// Copied reports whether exampleID is currently marked.
func (in *Indicator) Copied(exampleID string) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	_, ok := in.entries[exampleID]
	return ok
}

// Active returns the marked example IDs, sorted.
func (in *Indicator) Active() []string {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]string, 0, len(in.entries))
	for id := range in.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Close stops every pending timer and clears all marks. Copy is a no-op
// afterwards.
func (in *Indicator) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()

	for id, e := range in.entries {
		e.timer.Stop()
		delete(in.entries, id)
	}
	in.closed = true
}
