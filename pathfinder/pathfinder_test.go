// Package pathfinder_test validates suboptimal path enumeration: bottleneck
// scoring, score consumption across shared segments, and the stop conditions.
package pathfinder_test

import (
	"testing"

	"github.com/Xiuying/assemblyline/kgraph"
	"github.com/Xiuying/assemblyline/pathfinder"
	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

// diamond builds the k=1 graph of the locus 1→{2,3}→4 with a strong isoform
// through node 2 (score 3) and a weak one through node 3 (score 1).
func diamond(t *testing.T) *kgraph.Graph {
	t.Helper()
	sg := splice.NewGraph()
	for id := splice.NodeID(1); id <= 4; id++ {
		sg.AddNode(id, transcript.Exon{Start: int64(id) * 100, End: int64(id)*100 + 50})
	}
	for _, e := range [][2]splice.NodeID{{1, 2}, {1, 3}, {2, 4}, {3, 4}} {
		if err := sg.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	g, _, err := kgraph.Build(sg, []splice.PartialPath{
		{Nodes: []splice.NodeID{1, 2, 4}, Score: 3},
		{Nodes: []splice.NodeID{1, 3, 4}, Score: 1},
	}, 1)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFindPaths_OrderedByScore(t *testing.T) {
	g := diamond(t)
	paths, err := pathfinder.FindPaths(g, kgraph.Source, kgraph.Sink, 0.1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0].Score != 3 || paths[1].Score != 1 {
		t.Errorf("scores = %g, %g; want 3, 1", paths[0].Score, paths[1].Score)
	}
	for i, p := range paths {
		if p.Vertices[0] != kgraph.Source {
			t.Errorf("path %d does not start at Source", i)
		}
		if p.Vertices[len(p.Vertices)-1] != kgraph.Sink {
			t.Errorf("path %d does not end at Sink", i)
		}
	}
	// the strong and weak isoforms route through different middle windows
	v2, _ := g.Find([]splice.NodeID{2})
	if paths[0].Vertices[2] != v2 {
		t.Errorf("best path must route through window (2), got %v", paths[0].Vertices)
	}
}

func TestFindPaths_MaxPathsCap(t *testing.T) {
	g := diamond(t)
	paths, err := pathfinder.FindPaths(g, kgraph.Source, kgraph.Sink, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected the cap to hold, got %d paths", len(paths))
	}
}

func TestFindPaths_FractionMajorFloor(t *testing.T) {
	g := diamond(t)
	// the weak isoform scores 1 < 0.5 × 3 and must be suppressed
	paths, err := pathfinder.FindPaths(g, kgraph.Source, kgraph.Sink, 0.5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 path above the floor, got %d", len(paths))
	}
}

func TestFindPaths_Validation(t *testing.T) {
	g := diamond(t)
	if _, err := pathfinder.FindPaths(nil, kgraph.Source, kgraph.Sink, 0, 1); err != pathfinder.ErrNilGraph {
		t.Errorf("expected ErrNilGraph, got %v", err)
	}
	if _, err := pathfinder.FindPaths(g, kgraph.Source, kgraph.Sink, 0, 0); err == nil {
		t.Error("expected ErrBadMaxPaths")
	}
	if _, err := pathfinder.FindPaths(g, kgraph.Source, kgraph.Sink, 1.5, 1); err == nil {
		t.Error("expected ErrBadFraction")
	}
}
