// File: methods_nodes.go
// Role: node lifecycle & queries: AddNode/HasNode/GetNode/RemoveNode/
//       Nodes/NodeCount/NodesMap.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyNodeID).
//  2. Under the write lock, register the node and bootstrap its incidence
//     bucket so edge methods can rely on it existing.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}

	g.nodes[id] = &Node{ID: id, Metadata: make(map[string]interface{})}
	g.adj[id] = make(edgeSet)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// GetNode returns the Node with the given ID, or ErrNodeNotFound.
// The returned *Node is treated as read-only by callers.
// Complexity: O(1)
func (g *Graph) GetNode(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// RemoveNode deletes a node and cascades to all incident edges.
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyNodeID) and presence (ErrNodeNotFound).
//  2. Unregister every incident edge from the catalog and from the opposite
//     endpoint's incidence bucket, collecting them for observer callbacks.
//  3. Delete the node and its bucket.
//  4. Notify the observer once per removed edge (outside the lock), so the
//     rendering adapter can release each edge's display handle.
//
// Complexity: O(deg(v)) plus observer callbacks.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()

	if _, exists := g.nodes[id]; !exists {
		g.mu.Unlock()

		return ErrNodeNotFound
	}

	// Collect incident edges before unregistering; observer callbacks fire
	// after the lock is dropped to allow re-entrant graph reads.
	removed := make([]*Edge, 0, len(g.adj[id]))
	for key := range g.adj[id] {
		e := g.edges[key]
		removed = append(removed, e)
		delete(g.edges, key)
		if other, ok := e.Other(id); ok {
			delete(g.adj[other], key)
		}
	}

	delete(g.adj, id)
	delete(g.nodes, id)
	g.mu.Unlock()

	if g.observer != nil {
		for _, e := range removed {
			g.observer.EdgeRemoved(e)
		}
	}

	return nil
}

// Nodes returns all node IDs in lexicographic ascending order — the stable
// enumeration surface for reproducible exports and tests.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NodesMap returns a shallow copy of the node catalog (ID → *Node). Callers
// may retain the map without holding graph locks; Node pointers refer to live
// objects and are read-only by convention.
// Complexity: O(V)
func (g *Graph) NodesMap() map[string]*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]*Node, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n
	}

	return out
}
