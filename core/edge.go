// File: edge.go
// Role: the Edge abstraction — capability-restricted construction and
//       validation, order-independent identity (EdgeKey, Hash, Equal), and
//       the query/display surface (exits, Other, SharesExit, Record).
//
// Determinism:
//   - EdgeKey is the canonical (lexicographically ordered) form of the pair,
//     so identity never depends on construction order.
//   - Hash() digests the canonical form; equal edges always hash equal.

package core

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Edge is an undirected, weighted connection between exactly two distinct
// nodes of one Graph.
//
// An Edge is immutable after construction: its endpoint pair and weight never
// change. Identity (Key, Equal, Hash) covers the unordered endpoint pair only
// — two edges joining the same nodes are equal even with different weights,
// so duplicate-free containers hold at most one edge per node pair.
//
// Edge has no exported constructor. Every live Edge was built by its owning
// Graph through the validation gate in newEdge, which guarantees the
// invariants above graph-wide.
type Edge struct {
	// exits holds the two endpoint node IDs. The storage order is an
	// arbitrary artifact of construction and carries no meaning.
	exits [2]string

	// weight is the length of the road; strictly positive, or WeightUndefined.
	weight int64

	// graph is a non-owning back-reference to the Graph that built this edge.
	graph *Graph
}

// EdgeKey is the canonical, comparable identity of an edge: the unordered
// endpoint pair stored in lexicographic order. Two EdgeKey values compare
// equal iff they name the same pair of nodes, regardless of the order the
// endpoints were supplied in, which makes EdgeKey directly usable as a Go
// map key for duplicate-free containers.
type EdgeKey struct {
	// A is the lexicographically smaller endpoint ID.
	A string
	// B is the lexicographically larger endpoint ID.
	B string
}

// KeyOf returns the canonical EdgeKey for the unordered pair {a, b}.
// KeyOf(a, b) == KeyOf(b, a) for all a, b.
// Complexity: O(1)
func KeyOf(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// Hash returns an order-independent 64-bit digest of the pair: the xxhash of
// the canonical form with a zero-byte separator between the two IDs (the
// separator keeps {"ab","c"} and {"a","bc"} from colliding). Equal keys hash
// equal by construction.
func (k EdgeKey) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(k.A)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(k.B)

	return d.Sum64()
}

// String renders the key as "A to B" in canonical order.
func (k EdgeKey) String() string { return k.A + " to " + k.B }

// newEdge validates a construction request and returns a fully-formed Edge.
//
// Preconditions, each with its own sentinel:
//  1. Neither endpoint may be absent (ErrNilEndpoint).
//  2. The endpoints must not name the same node (ErrSelfLoop).
//  3. weight must be strictly positive, or exactly WeightUndefined
//     (ErrInvalidWeight).
//
// Failure is atomic: on any error no Edge is returned and no state anywhere
// has changed. Only the Graph calls newEdge, after its own duplicate check.
// Complexity: O(1)
func newEdge(g *Graph, first, second string, weight int64) (*Edge, error) {
	if first == "" || second == "" {
		return nil, ErrNilEndpoint
	}
	if first == second {
		return nil, ErrSelfLoop
	}
	if weight <= 0 && weight != WeightUndefined {
		return nil, ErrInvalidWeight
	}

	return &Edge{exits: [2]string{first, second}, weight: weight, graph: g}, nil
}

// IsNil reports whether the receiver is nil. Safe on typed-nil pointers
// stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// Graph returns the Graph that owns this edge.
func (e *Edge) Graph() *Graph { return e.graph }

// Weight returns the length of this edge. Uncorrelated with any graphical
// length on screen. Either strictly positive or WeightUndefined.
func (e *Edge) Weight() int64 { return e.weight }

// FirstExit returns one endpoint of this edge. Which endpoint is "first" is
// an arbitrary storage artifact; callers must not attach meaning to it.
func (e *Edge) FirstExit() string { return e.exits[0] }

// SecondExit returns the other endpoint of this edge. As with FirstExit, the
// position carries no meaning.
func (e *Edge) SecondExit() string { return e.exits[1] }

// Exits returns a copy of the two-endpoint pair. Mutating the returned array
// never alters the edge (defensive copy: [2]string is a value, copied on
// return).
func (e *Edge) Exits() [2]string { return e.exits }

// IsExit reports whether id equals either endpoint of this edge.
// Complexity: O(1)
func (e *Edge) IsExit(id string) bool {
	return e.exits[0] == id || e.exits[1] == id
}

// SharesExit reports whether this edge and other have at least one endpoint
// in common, checked pairwise across both endpoint pairs (4 comparisons).
// A nil other shares nothing.
func (e *Edge) SharesExit(other *Edge) bool {
	if other.IsNil() {
		return false
	}

	return e.IsExit(other.exits[0]) || e.IsExit(other.exits[1])
}

// Other returns the endpoint opposite to id. The second result is false when
// id is neither endpoint — a valid probe outcome, deliberately not an error,
// since callers use Other to test membership.
func (e *Edge) Other(id string) (string, bool) {
	switch id {
	case e.exits[0]:
		return e.exits[1], true
	case e.exits[1]:
		return e.exits[0], true
	default:
		return "", false
	}
}

// Key returns the canonical unordered-pair identity of this edge.
func (e *Edge) Key() EdgeKey { return KeyOf(e.exits[0], e.exits[1]) }

// Hash returns the order-independent 64-bit digest of this edge's endpoint
// pair. Equal edges (either orientation, any weights) hash equal.
func (e *Edge) Hash() uint64 { return e.Key().Hash() }

// Equal reports whether this edge and other join the same unordered node
// pair. Weight is excluded from identity: Edge(A,B,5) equals Edge(B,A,7).
func (e *Edge) Equal(other *Edge) bool {
	if other.IsNil() {
		return false
	}

	return e.Key() == other.Key()
}

// MappedName returns the weight formatted as a display label, or "?" when
// the weight is still WeightUndefined. Consumed by the rendering adapter.
func (e *Edge) MappedName() string {
	if e.weight == WeightUndefined {
		return "?"
	}

	return strconv.FormatInt(e.weight, 10)
}

// String returns "A to B" using the internal storage order of the exits.
func (e *Edge) String() string {
	return e.exits[0] + " to " + e.exits[1]
}

// EdgeRecord is the minimal structured record an external serializer consumes
// for one edge: the two endpoint names and the length. Quoting and escaping
// of names is the serializer's responsibility, not this package's.
type EdgeRecord struct {
	Endpoints [2]string `json:"endpoints"`
	Length    int64     `json:"length"`
}

// Record returns the serializer-facing record of this edge. Endpoints appear
// in canonical order so repeated exports of the same board are byte-stable.
func (e *Edge) Record() EdgeRecord {
	k := e.Key()

	return EdgeRecord{Endpoints: [2]string{k.A, k.B}, Length: e.weight}
}
