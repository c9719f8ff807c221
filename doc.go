// Package roadnet models the undirected, weighted road network that sits
// underneath a node/edge board game: named nodes (cities, stops, junctions)
// joined by weighted edges (roads with a length).
//
// The library is the structural substrate only. It owns node and edge
// identity, validation, and graph-wide consistency; it does not draw lines,
// handle input, or serialize boards. Presentation and persistence consume
// small read-only surfaces instead:
//
//	core/   — Node, Edge, Graph: construction, validation, identity, queries
//	render/ — side-table adapter binding edges to rendering handles
//	export/ — assembly of the {endpoints, length} records for a serializer
//
// The load-bearing discipline is edge identity. An edge is an unordered pair
// of two distinct node IDs; equality and hashing ignore the storage order of
// the pair and ignore the weight, so a duplicate-free container can never
// hold two edges joining the same pair of nodes. Edges are built exclusively
// through the Graph, which validates every construction request and rejects
// duplicates before anything becomes observable.
//
// Quick ASCII example:
//
//	    A──5──B
//	    │     │
//	    2     7
//	    │     │
//	    C──4──D
//
//	four nodes, four weighted roads; Edge(A,B) == Edge(B,A) regardless of weight.
//
//	go get github.com/gryft/roadnet
package roadnet
