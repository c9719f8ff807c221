// Package render binds graph edges to their graphical representations
// without coupling the structural core to any presentation technology.
//
// The core Edge type holds no rendering handle. Instead, a Table — attached
// to a Graph as its Observer — maintains a side-table keyed by edge identity
// (core.EdgeKey): when the graph registers an edge, the Table asks its
// Surface for a Handle; when the edge is removed (directly or through a
// node-removal cascade), the Handle is released. Repaint requests are
// forwarded with no positional parameters: the rendering technology
// re-derives line positions from its own current node state.
//
// Errors (sentinel):
//
//	ErrNilSurface — NewTable was given a nil Surface.
package render

import (
	"errors"
	"sync"

	"github.com/gryft/roadnet/core"
)

// ErrNilSurface indicates that NewTable was given a nil Surface.
var ErrNilSurface = errors.New("render: surface is nil")

// Handle is one edge's graphical representation, owned by the Surface that
// produced it.
type Handle interface {
	// Repaint resynchronizes the representation with the current state of
	// the edge's endpoints. It takes no positional parameters: positions are
	// re-derived from the endpoints' own current state.
	Repaint()

	// Release frees the representation's resources. Called exactly once,
	// when the edge leaves the graph.
	Release()
}

// Surface produces graphical representations for edges. Implementations are
// presentation-specific (a canvas, a scene graph, a test double); the
// structural core never sees them.
type Surface interface {
	// Line creates the representation for e. The label to draw alongside the
	// line is e.MappedName().
	Line(e *core.Edge) Handle
}

// Table is the side-table tying live edges to their display handles. It
// implements core.Observer; attach it to a graph at construction time:
//
//	tbl, _ := render.NewTable(surface)
//	g := core.NewGraph(core.WithObserver(tbl))
//
// Table's own state is safe for concurrent use. Callbacks arrive
// synchronously from whichever goroutine mutates the graph, and the side
// table is only guaranteed to mirror the graph under the core model's
// single-mutator discipline: concurrent mutators may interleave an
// EdgeRemoved for a pair ahead of a competing EdgeAdded (see core.Observer).
type Table struct {
	mu      sync.Mutex
	surface Surface
	lines   map[core.EdgeKey]Handle
}

// NewTable returns a Table producing handles from surface.
func NewTable(surface Surface) (*Table, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	return &Table{
		surface: surface,
		lines:   make(map[core.EdgeKey]Handle),
	}, nil
}

// EdgeAdded acquires a display handle for e. Part of core.Observer.
func (t *Table) EdgeAdded(e *core.Edge) {
	if e.IsNil() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// A duplicate key cannot arrive from a consistent graph; keep the first
	// handle if it somehow does.
	key := e.Key()
	if _, exists := t.lines[key]; exists {
		return
	}

	t.lines[key] = t.surface.Line(e)
}

// EdgeRemoved releases and forgets the handle held for e, if any.
// Part of core.Observer.
func (t *Table) EdgeRemoved(e *core.Edge) {
	if e.IsNil() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := e.Key()
	h, ok := t.lines[key]
	if !ok {
		return
	}

	delete(t.lines, key)
	h.Release()
}

// Repaint forwards a repaint request for the edge identified by key and
// reports whether a handle was found for it.
func (t *Table) Repaint(key core.EdgeKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	h, ok := t.lines[key]
	if !ok {
		return false
	}

	h.Repaint()

	return true
}

// RepaintAll forwards a repaint request to every held handle, e.g. after a
// batch of node moves.
func (t *Table) RepaintAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, h := range t.lines {
		h.Repaint()
	}
}

// Len returns the number of handles currently held.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.lines)
}
