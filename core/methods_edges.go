// File: methods_edges.go
// Role: edge lifecycle & queries: Connect/ConnectPair/Disconnect/HasEdge/
//       EdgeBetween/Edges/EdgeCount, plus incidence queries EdgesAt/
//       Neighbors/Degree.
//
// Determinism:
//   - Edges() returns edges sorted by canonical EdgeKey ascending.
//   - EdgesAt() and Neighbors() sort their results the same way.
// Concurrency:
//   - Mutations under the write lock; observer callbacks fire after the lock
//     is released, once graph state is consistent.

package core

import "sort"

// Connect validates and registers a new edge joining a and b with the given
// weight, and returns it. This is the only construction path for edges: the
// duplicate pre-check of the Graph is mandatory and happens here, before
// anything becomes observable.
//
// Steps:
//  1. Validate the request through the edge gate: ErrNilEndpoint,
//     ErrSelfLoop, ErrInvalidWeight.
//  2. Under the write lock, reject a second edge for the same unordered pair
//     (ErrDuplicateEdge) — weight plays no part in the check.
//  3. Ensure both endpoint nodes exist (created on demand).
//  4. Register the edge in the catalog and both incidence buckets.
//  5. Notify the observer (rendering adapter acquires a display handle).
//
// Failure is atomic: on any error no collection has been touched.
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b string, weight int64) (*Edge, error) {
	e, err := newEdge(g, a, b, weight)
	if err != nil {
		return nil, err
	}

	key := e.Key()

	g.mu.Lock()

	if _, dup := g.edges[key]; dup {
		g.mu.Unlock()

		return nil, ErrDuplicateEdge
	}

	g.ensureNode(a)
	g.ensureNode(b)

	g.edges[key] = e
	g.adj[a][key] = struct{}{}
	g.adj[b][key] = struct{}{}
	g.mu.Unlock()

	if g.observer != nil {
		g.observer.EdgeAdded(e)
	}

	return e, nil
}

// ConnectPair is the two-element-collection form of Connect: exits must hold
// exactly two node IDs (ErrMalformedEndpoints otherwise; a nil slice counts
// as zero elements). The order of the pair carries no meaning.
func (g *Graph) ConnectPair(exits []string, weight int64) (*Edge, error) {
	if len(exits) != 2 {
		return nil, ErrMalformedEndpoints
	}

	return g.Connect(exits[0], exits[1], weight)
}

// ensureNode registers id if missing. Caller holds the write lock.
func (g *Graph) ensureNode(id string) {
	if _, exists := g.nodes[id]; exists {
		return
	}

	g.nodes[id] = &Node{ID: id, Metadata: make(map[string]interface{})}
	g.adj[id] = make(edgeSet)
}

// Disconnect removes the edge joining a and b (either orientation).
// Removing an absent edge returns ErrEdgeNotFound — no silent ignore.
// The observer is notified so the edge's display handle can be released.
// Complexity: O(1)
func (g *Graph) Disconnect(a, b string) error {
	if a == "" || b == "" {
		return ErrNilEndpoint
	}

	key := KeyOf(a, b)

	g.mu.Lock()

	e, ok := g.edges[key]
	if !ok {
		g.mu.Unlock()

		return ErrEdgeNotFound
	}

	delete(g.edges, key)
	delete(g.adj[a], key)
	delete(g.adj[b], key)
	g.mu.Unlock()

	if g.observer != nil {
		g.observer.EdgeRemoved(e)
	}

	return nil
}

// HasEdge reports whether an edge joins a and b, in either orientation.
// Complexity: O(1)
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[KeyOf(a, b)]

	return ok
}

// EdgeBetween returns the edge joining a and b (either orientation), or
// ErrEdgeNotFound. The returned *Edge is immutable and safe to retain.
// Complexity: O(1)
func (g *Graph) EdgeBetween(a, b string) (*Edge, error) {
	if a == "" || b == "" {
		return nil, ErrNilEndpoint
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[KeyOf(a, b)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by canonical key ascending (stable,
// deterministic order).
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}

	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgesAt returns the edges incident to id, sorted by canonical key.
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) EdgesAt(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]*Edge, 0, len(bucket))
	for key := range bucket {
		out = append(out, g.edges[key])
	}

	sortEdges(out)

	return out, nil
}

// Neighbors returns the IDs of all nodes joined to id by an edge, sorted
// ascending. A node with no edges yields an empty slice.
// Complexity: O(d log d)
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]string, 0, len(bucket))
	for key := range bucket {
		if other, found := g.edges[key].Other(id); found {
			out = append(out, other)
		}
	}

	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id. Self-loops cannot exist
// in this model, so degree equals the neighbor count.
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(bucket), nil
}

// sortEdges orders a slice of edges by canonical key ascending.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		ki, kj := es[i].Key(), es[j].Key()
		if ki.A != kj.A {
			return ki.A < kj.A
		}

		return ki.B < kj.B
	})
}
