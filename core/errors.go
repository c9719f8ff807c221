// File: errors.go
// Role: sentinel error inventory for core graph operations, matched by
//       callers with errors.Is.

package core

import "errors"

// Sentinel errors for core graph operations. All construction-time validation
// failures indicate a programming or input error in the caller (the Graph's
// client or a board loader); none are retryable.
var (
	// ErrMalformedEndpoints indicates an endpoint collection whose length is not exactly two.
	ErrMalformedEndpoints = errors.New("core: endpoint collection must hold exactly two node IDs")

	// ErrNilEndpoint indicates a missing/absent endpoint reference.
	ErrNilEndpoint = errors.New("core: edge endpoint is absent")

	// ErrSelfLoop indicates both endpoints resolve to the same node.
	ErrSelfLoop = errors.New("core: edge endpoints refer to the same node")

	// ErrInvalidWeight indicates a zero or negative weight outside the reserved sentinel.
	ErrInvalidWeight = errors.New("core: edge weight must be a positive integer")

	// ErrDuplicateEdge indicates an edge for the same unordered node pair already exists.
	ErrDuplicateEdge = errors.New("core: edge already connects this node pair")

	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
