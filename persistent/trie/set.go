package trie

// Set is a trie which records membership of label sequences only, e.g. words over an
// alphabet of bytes or runes. An empty instance is usable as an empty set.
type Set[L comparable] struct {
	trie Trie[L, bool]
}

// NewSet creates an empty set. This is equivalent to using the zero value.
func NewSet[L comparable]() Set[L] {
	return Set[L]{trie: Immutable[L, bool]()}
}

// Insert returns a copy of s which contains path.
func (s Set[L]) Insert(path []L) Set[L] {
	return Set[L]{trie: s.trie.InsertStore(path, true)}
}

// Search is true if path is a member of s.
func (s Set[L]) Search(path []L) bool {
	_, ok := s.trie.GetStore(path)
	return ok
}

// HasPrefix is true if s contains path or a member starting with path.
func (s Set[L]) HasPrefix(path []L) bool {
	return s.trie.HasPrefix(path)
}

// Remove returns a copy of s without path. If path is not a member of s, Remove returns
// s unchanged and false.
func (s Set[L]) Remove(path []L) (Set[L], bool) {
	t, ok := s.trie.RemoveStore(path, true)
	if !ok {
		return s, false
	}
	return Set[L]{trie: t}, true
}
