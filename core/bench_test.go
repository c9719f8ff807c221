// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/gryft/roadnet/core"
)

// BenchmarkConnect measures edge construction in a growing star topology.
func BenchmarkConnect(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Connect("Root", fmt.Sprintf("N%d", i), int64(i)+1)
	}
}

// BenchmarkHasEdge measures the constant-time membership probe on a
// populated board.
func BenchmarkHasEdge(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.Connect("Center", fmt.Sprintf("N%d", i), int64(i)+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge("Center", fmt.Sprintf("N%d", i%1000))
	}
}

// BenchmarkEdgeKeyHash measures the order-independent digest of a pair.
func BenchmarkEdgeKeyHash(b *testing.B) {
	key := core.KeyOf("Amsterdam", "Rotterdam")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = key.Hash()
	}
}

// BenchmarkClone measures the deep copy of a 1000-edge star.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.Connect("A", fmt.Sprintf("V%d", i), int64(i)+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
