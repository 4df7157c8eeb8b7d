package bundle

import "sync"

// Guard stamps keyed fetches with a generation so that a slow fetch can tell
// whether a newer one for the same key began after it. Safe for concurrent use.
type Guard struct {
	mu   sync.Mutex
	seq  uint64
	gens map[string]uint64
}

// Stamp identifies one fetch.
type Stamp struct {
	Key string
	Gen uint64
}

// NewGuard returns an empty Guard.
func NewGuard() *Guard {
	return &Guard{gens: make(map[string]uint64)}
}

// Begin starts a fetch for key and supersedes every earlier one.
func (g *Guard) Begin(key string) Stamp {
	g.mu.Lock()
	defer g.mu.Unlock()
	// A single sequence across keys keeps stamps unique even after Finish
	// forgets a key.
	g.seq++
	g.gens[key] = g.seq
	return Stamp{Key: key, Gen: g.seq}
}

// Current reports whether s is still the latest fetch for its key.
func (g *Guard) Current(s Stamp) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[s.Key] == s.Gen
}

// Finish releases the key when s is still the latest fetch, keeping the map
// from growing with keys nobody fetches anymore.
func (g *Guard) Finish(s Stamp) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gens[s.Key] == s.Gen {
		delete(g.gens, s.Key)
	}
}
