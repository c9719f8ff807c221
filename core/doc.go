// Package core provides the in-memory structural model of a road network:
// named Nodes joined by undirected, weighted Edges, owned and kept consistent
// by a single Graph.
//
// The Graph G = (V,E) is deliberately narrow in behavior:
//
//   - Undirected only — every edge is a two-way road.
//   - Weighted only — every edge carries a strictly positive length
//     (or the reserved WeightUndefined sentinel for not-yet-assigned lengths).
//   - No self-loops — an edge joins two DISTINCT nodes, always.
//   - No parallel edges — at most one edge per unordered node pair.
//
// Edge identity is the heart of the package. An Edge is an unordered pair of
// node IDs: swapping the endpoints yields an equal edge with an identical
// 64-bit digest, and the weight is excluded from identity entirely. The
// canonical form of the pair is the comparable EdgeKey, usable directly as a
// Go map key, so duplicate-free containers fall out of the type system.
//
// Construction is capability-restricted: Edge has no exported constructor.
// Every live Edge was built by the Graph through a validation gate that fails
// atomically — on any validation error nothing is registered and no
// partially-built edge is observable.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(id string) error            // O(1), idempotent
//	HasNode(id string) bool             // O(1)
//	GetNode(id string) (*Node, error)   // O(1)
//	RemoveNode(id string) error         // O(E): cascades to incident edges
//
//	// Edge lifecycle
//	Connect(a, b string, weight int64) (*Edge, error)      // O(1)
//	ConnectPair(exits []string, weight int64) (*Edge, error)
//	Disconnect(a, b string) error       // O(1)
//	HasEdge(a, b string) bool           // O(1)
//	EdgeBetween(a, b string) (*Edge, error)
//
//	// Query
//	Nodes() []string                    // O(V log V), sorted asc
//	Edges() []*Edge                     // O(E log E), sorted by canonical key
//	EdgesAt(id string) ([]*Edge, error) // O(d log d), sorted
//	Neighbors(id string) ([]string, error)
//	Degree(id string) (int, error)
//	NodeCount() int                     // O(1)
//	EdgeCount() int                     // O(1)
//
//	// Maintenance
//	Clear()                             // O(1)
//	Clone() *Graph                      // O(V+E), deep copy, no aliasing
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrMalformedEndpoints — endpoint collection does not hold exactly two IDs
//	ErrNilEndpoint        — an endpoint ID is absent/empty
//	ErrSelfLoop           — both endpoints name the same node
//	ErrInvalidWeight      — weight is zero or negative (and not WeightUndefined)
//	ErrDuplicateEdge      — an edge for the same unordered pair already exists
//	ErrEmptyNodeID        — node ID is the empty string
//	ErrNodeNotFound       — referenced node does not exist
//	ErrEdgeNotFound       — referenced edge does not exist
//
// Concurrency: the Graph is the sole mutation authority and serializes all
// structural changes through one RWMutex. Edges themselves are immutable
// after construction, so references handed out by query methods are safe to
// read without further synchronization.
package core
