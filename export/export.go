// Package export assembles the minimal structured records an external
// serializer consumes for a board: one {endpoints, length} record per edge.
//
// The package deliberately implements no serializer. It only gathers the
// read-only surface the core exposes (core.EdgeRecord) into a deterministic
// snapshot; turning records into JSON, text, or anything else — including
// the quoting of node names — is the consumer's business.
//
// Errors (sentinel):
//
//	ErrNilGraph — Snapshot was given a nil graph.
package export

import (
	"errors"

	"github.com/gryft/roadnet/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Snapshot.
var ErrNilGraph = errors.New("export: graph is nil")

// Snapshot returns one record per edge of g, ordered by the canonical
// endpoint pair ascending, so repeated snapshots of the same board are
// identical element-for-element.
//
// Complexity: O(E log E)
func Snapshot(g *core.Graph) ([]core.EdgeRecord, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	edges := g.Edges() // already sorted by canonical key
	out := make([]core.EdgeRecord, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Record())
	}

	return out, nil
}
