package proof

// Store caches extracted proofs by their root identifier so repeated
// printing of the same refutation does not re-walk the graph. It is owned by
// the session and replaced wholesale by a full reset: cached steps hold unit
// references built against the discarded arena, and keeping them would let
// stale cross-references leak into the next session.
type Store struct {
	byRoot map[uint32][]Step
}

// NewStore returns an empty proof cache.
func NewStore() *Store {
	return &Store{byRoot: make(map[uint32][]Step)}
}

// Get returns the cached extraction for the given root, if present.
func (s *Store) Get(rootID uint32) ([]Step, bool) {
	steps, ok := s.byRoot[rootID]
	return steps, ok
}

// Put caches an extraction under its root identifier.
func (s *Store) Put(rootID uint32, steps []Step) {
	s.byRoot[rootID] = steps
}

// Clear drops every cached extraction.
func (s *Store) Clear() {
	s.byRoot = make(map[uint32][]Step)
}
