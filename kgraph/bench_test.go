package kgraph_test

import (
	"math/rand"
	"testing"

	"github.com/Xiuying/assemblyline/kgraph"
	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

// benchLocus builds a linear splice chain of n nodes covered by overlapping
// read-length fragments, the shape the rebuild-per-k loop sees in practice.
func benchLocus(n, fragLen int) (*splice.Graph, []splice.PartialPath) {
	sg := splice.NewGraph()
	for i := 0; i < n; i++ {
		sg.AddNode(splice.NodeID(i), transcript.Exon{Start: int64(i) * 100, End: int64(i)*100 + 50})
	}
	for i := 0; i+1 < n; i++ {
		_ = sg.AddEdge(splice.NodeID(i), splice.NodeID(i+1))
	}
	rng := rand.New(rand.NewSource(42))
	paths := make([]splice.PartialPath, 0, n)
	for start := 0; start+fragLen <= n; start++ {
		nodes := make([]splice.NodeID, fragLen)
		for j := range nodes {
			nodes[j] = splice.NodeID(start + j)
		}
		paths = append(paths, splice.PartialPath{Nodes: nodes, Score: 1 + rng.Float64()})
	}
	return sg, paths
}

// BenchmarkBuild_Chain measures one graph construction at a fixed k.
func BenchmarkBuild_Chain(b *testing.B) {
	sg, paths := benchLocus(500, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = kgraph.Build(sg, paths, 4)
	}
}

// BenchmarkOptimize_Chain measures the full rebuild-per-k search.
func BenchmarkOptimize_Chain(b *testing.B) {
	sg, paths := benchLocus(200, 8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kgraph.Optimize(sg, paths, 1, 8, 0.9)
	}
}
