// File: types.go
// Role: declares Node, Graph, Observer, GraphOption, the WeightUndefined
//       sentinel, and the NewGraph constructor.

package core

import (
	"math"
	"sync"
)

// WeightUndefined is the reserved sentinel weight for edges whose length has
// not been assigned yet. It is exempt from the positivity check so that board
// loaders may wire topology first and fill in lengths later. Every other
// non-positive value is rejected with ErrInvalidWeight.
const WeightUndefined int64 = math.MinInt64

// Node represents a named vertex of the road network.
//
// ID uniquely identifies this Node within its Graph; node equality is ID
// equality, stable for the lifetime of the run. Metadata stores arbitrary
// user data and is shared (not deep-copied) by Clone.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Metadata stores arbitrary user data. It is not part of node identity.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver is nil. Safe on typed-nil pointers
// stored inside interfaces.
func (n *Node) IsNil() bool { return n == nil }

// String returns the node's ID.
func (n *Node) String() string { return n.ID }

// Observer receives structural change notifications from a Graph.
//
// A rendering adapter implements Observer to keep its side-table of display
// handles in sync with the graph: a handle is created when an edge appears
// and released when the edge is removed. Callbacks run synchronously inside
// the mutating call, after graph state is consistent and outside the graph
// lock; they must not mutate the Graph re-entrantly.
//
// Delivery order is only defined under the single-mutator discipline this
// model assumes: with one goroutine driving structural changes, callbacks
// arrive in mutation order. Concurrent mutators keep the Graph itself
// consistent, but callbacks for different mutations may interleave in
// either order, so an Observer must not rely on cross-mutation ordering.
type Observer interface {
	// EdgeAdded is invoked after a validated edge has been registered.
	EdgeAdded(e *Edge)

	// EdgeRemoved is invoked after an edge has been unregistered, whether
	// directly or as part of a node-removal cascade. Any resource held for
	// the edge must be released here.
	EdgeRemoved(e *Edge)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithObserver attaches an Observer notified on edge registration and
// removal. At most one observer is supported; the last option wins.
func WithObserver(o Observer) GraphOption {
	return func(g *Graph) { g.observer = o }
}

// Graph is the aggregate owner of all nodes and edges of one road network.
//
// The Graph is the sole mutation authority: every edge is constructed through
// its validation gate, and duplicate edges (same unordered node pair) are
// rejected before anything becomes observable. All structural state is
// guarded by a single RWMutex, so mutations are serialized and reads may
// proceed concurrently between them.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node   // node ID → Node
	edges map[EdgeKey]*Edge  // canonical pair → Edge
	adj   map[string]edgeSet // node ID → incident edge keys

	observer Observer // optional; nil when no rendering adapter is attached
}

// edgeSet is the internal incidence bucket: a set of canonical edge keys.
type edgeSet map[EdgeKey]struct{}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[EdgeKey]*Edge),
		adj:   make(map[string]edgeSet),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
