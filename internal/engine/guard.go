package engine

import (
	"sync"

	"keyshift/internal/keys"
)

// Guard is the suppression registry: a multiset of codes whose next
// occurrence in the event stream is the engine's own injected event and
// must be forwarded rather than reprocessed. Each Add is a single-use
// ticket consumed by exactly one Take.
type Guard struct {
	mu      sync.Mutex
	pending map[keys.Code]int
}

// NewGuard returns an empty registry.
func NewGuard() *Guard {
	return &Guard{pending: make(map[keys.Code]int)}
}

// Add registers one ticket per code; duplicates add duplicate tickets.
func (g *Guard) Add(codes ...keys.Code) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range codes {
		g.pending[c]++
	}
}

// Take consumes one ticket for code and reports whether one existed.
func (g *Guard) Take(code keys.Code) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.pending[code]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(g.pending, code)
	} else {
		g.pending[code] = n - 1
	}
	return true
}

// Cancel drops one ticket per code, for events that were registered but
// never injected.
func (g *Guard) Cancel(codes ...keys.Code) {
	for _, c := range codes {
		g.Take(c)
	}
}

// Len returns the number of outstanding tickets.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, v := range g.pending {
		n += v
	}
	return n
}
