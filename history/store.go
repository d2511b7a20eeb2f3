// Package history is a name-suggestion store for interactive front-ends:
// it remembers alternative and criterion names a user has typed before and
// offers them back as suggestions.
//
// This is presentation-layer state, injected explicitly where a UI needs
// it. The vikor core never sees it — rankings stay pure functions. The
// bundled MemoryStore keeps everything in process memory only; nothing
// survives the session.
package history

import "sync"

// Kinds used by the bundled tooling. Any other kind string works too; the
// store does not interpret kinds beyond keying on them.
const (
	KindAlternatives = "alternatives"
	KindCriteria     = "criteria"
)

// Store records names per kind and suggests them back, most recent input
// last. Implementations must be safe for concurrent use.
type Store interface {
	// Add records a name under kind. Empty names and exact duplicates are
	// ignored.
	Add(kind, name string)

	// Suggest returns up to limit recorded names for kind, in insertion
	// order. limit <= 0 means all.
	Suggest(kind string, limit int) []string
}

// MemoryStore is the in-process Store. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	names map[string][]string
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{names: make(map[string][]string)}
}

// Add records name under kind unless it is empty or already recorded.
func (s *MemoryStore) Add(kind, name string) {
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.names[kind] {
		if existing == name {
			return
		}
	}
	s.names[kind] = append(s.names[kind], name)
}

// Suggest returns a copy of up to limit names for kind, in insertion order.
func (s *MemoryStore) Suggest(kind string, limit int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	recorded := s.names[kind]
	if limit <= 0 || limit > len(recorded) {
		limit = len(recorded)
	}

	return append([]string(nil), recorded[:limit]...)
}
