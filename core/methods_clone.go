// File: methods_clone.go
// Role: cloning and clearing graph instances.
// Concurrency:
//   - One read lock held across the whole snapshot; the source graph is
//     never mutated, and no writer can slip between the node and edge pass.

package core

// CloneEmpty returns a new Graph with the same nodes but no edges.
//
// Node Metadata maps are shared with the source (shallow copy); the observer
// is NOT carried over — a rendering adapter tracks exactly one graph, and a
// clone starts unobserved.
//
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

// cloneEmptyLocked copies nodes and empty incidence buckets into a fresh
// graph. Caller holds at least the read lock.
func (g *Graph) cloneEmptyLocked() *Graph {
	clone := NewGraph()
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Metadata: n.Metadata}
		clone.adj[id] = make(edgeSet)
	}

	return clone
}

// Clone returns a deep copy of the Graph: nodes, edges, and incidence.
// Edge objects are re-created for the clone (no pointer aliasing), with the
// clone as their owning graph.
//
// The node and edge passes run under one read-lock acquisition, so the
// snapshot is consistent even while writers are queued: every edge copied
// has both its endpoint buckets already in place.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	for key, e := range g.edges {
		ne := &Edge{exits: e.exits, weight: e.weight, graph: clone}
		clone.edges[key] = ne
		clone.adj[e.exits[0]][key] = struct{}{}
		clone.adj[e.exits[1]][key] = struct{}{}
	}

	return clone
}

// Clear resets the graph to an empty state. The observer, if any, stays
// attached but is not notified: Clear discards the whole board at once and
// the caller is expected to reset the presentation layer wholesale.
//
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[EdgeKey]*Edge)
	g.adj = make(map[string]edgeSet)
}
