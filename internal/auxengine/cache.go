package auxengine

import "sync"

// PVCache (C1) is a dedup set keyed by a PV's comma-separated move key. Its
// sole purpose is to stop the same line, computed by different helpers or
// at different times, from being grafted twice.
type PVCache struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewPVCache() *PVCache {
	return &PVCache{seen: make(map[string]struct{})}
}

// SeenOrInsert reports whether key was already present, inserting it if
// not. Each caller gets an independent answer: this is plain protected-set
// membership, not work deduplication, so golang.org/x/sync/singleflight
// (which collapses concurrent callers for the same key into one shared
// result) does not fit here — see SPEC_FULL.md §11.
func (c *PVCache) SeenOrInsert(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.seen[key]; ok {
		return true
	}
	c.seen[key] = struct{}{}
	return false
}

// Clear empties the cache. Called between moves.
func (c *PVCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = make(map[string]struct{})
}

// Len reports the number of distinct keys currently cached.
func (c *PVCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}
