package catalog

import "sync/atomic"

// Holder publishes the current Catalog to request handlers. Swapping in a new
// snapshot never affects requests already holding the old one.
type Holder struct {
	p atomic.Pointer[Catalog]
}

// NewHolder returns a Holder publishing c.
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.p.Store(c)
	return h
}

// Catalog returns the current snapshot.
func (h *Holder) Catalog() *Catalog { return h.p.Load() }

// Swap publishes c and returns the previous snapshot.
func (h *Holder) Swap(c *Catalog) *Catalog { return h.p.Swap(c) }
