// File: edgeset.go
// Role: EdgeSet — a duplicate-free edge container keyed by canonical
//       EdgeKey, so at most one edge per unordered node pair is admitted.

package core

// EdgeSet is a duplicate-free collection of edges. Membership is decided by
// edge identity (the unordered endpoint pair), never by weight: inserting
// Edge(A,B,5) and then Edge(B,A,7) leaves exactly one entry, the first one.
//
// The zero value is not usable; construct with NewEdgeSet. EdgeSet is not
// safe for concurrent mutation.
type EdgeSet struct {
	members map[EdgeKey]*Edge
}

// NewEdgeSet returns an empty EdgeSet.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{members: make(map[EdgeKey]*Edge)}
}

// Add inserts e and reports whether it was admitted. An edge equal to an
// existing member (same pair, any weight, either orientation) is rejected
// and the existing member is kept. Nil edges are never admitted.
// Complexity: O(1)
func (s *EdgeSet) Add(e *Edge) bool {
	if e.IsNil() {
		return false
	}

	key := e.Key()
	if _, exists := s.members[key]; exists {
		return false
	}

	s.members[key] = e

	return true
}

// Has reports whether an edge equal to e is a member.
// Complexity: O(1)
func (s *EdgeSet) Has(e *Edge) bool {
	if e.IsNil() {
		return false
	}
	_, ok := s.members[e.Key()]

	return ok
}

// Remove deletes the member equal to e and reports whether one was present.
// Complexity: O(1)
func (s *EdgeSet) Remove(e *Edge) bool {
	if e.IsNil() {
		return false
	}

	key := e.Key()
	if _, ok := s.members[key]; !ok {
		return false
	}

	delete(s.members, key)

	return true
}

// Len returns the number of members.
func (s *EdgeSet) Len() int { return len(s.members) }

// Edges returns the members sorted by canonical key ascending.
// Complexity: O(n log n)
func (s *EdgeSet) Edges() []*Edge {
	out := make([]*Edge, 0, len(s.members))
	for _, e := range s.members {
		out = append(out, e)
	}

	sortEdges(out)

	return out
}
