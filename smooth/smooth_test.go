package smooth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiuying/assemblyline/kgraph"
	"github.com/Xiuying/assemblyline/smooth"
	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

// chainGraph builds the k=1 graph of the locus 1→2→3 covered by the two
// overlapping fragments {1,2} and {2,3}: Source→(1)→(2)→(3)→Sink with scores
// 4, 8, 4 and boundary credits where each fragment starts and ends.
func chainGraph(t *testing.T) *kgraph.Graph {
	t.Helper()
	sg := splice.NewGraph()
	for id := splice.NodeID(1); id <= 3; id++ {
		sg.AddNode(id, transcript.Exon{Start: int64(id) * 100, End: int64(id)*100 + 50})
	}
	require.NoError(t, sg.AddEdge(1, 2))
	require.NoError(t, sg.AddEdge(2, 3))

	g, short, err := kgraph.Build(sg, []splice.PartialPath{
		{Nodes: []splice.NodeID{1, 2}, Score: 4},
		{Nodes: []splice.NodeID{2, 3}, Score: 4},
	}, 1)
	require.NoError(t, err)
	require.True(t, short.Empty())
	return g
}

// Smoothing must carry each fragment's boundary mass across the windows the
// fragment did not reach, evening out the coverage dip at the chain's ends.
func TestSmooth_SpreadsBoundaryMass(t *testing.T) {
	g := chainGraph(t)
	v1, _ := g.Find([]splice.NodeID{1})
	v2, _ := g.Find([]splice.NodeID{2})
	v3, _ := g.Find([]splice.NodeID{3})

	require.NoError(t, smooth.Smooth(g))

	// fragment {1,2} ends at (2): its forward credit flows on to (3);
	// fragment {2,3} starts at (2): its reverse credit flows back to (1)
	assert.Equal(t, 8.0, g.Score(v1))
	assert.Equal(t, 8.0, g.Score(v2))
	assert.Equal(t, 8.0, g.Score(v3))
}

func TestSmooth_PreservesTopology(t *testing.T) {
	g := chainGraph(t)
	order, size := g.Order(), g.Size()

	require.NoError(t, smooth.Smooth(g))

	assert.Equal(t, order, g.Order())
	assert.Equal(t, size, g.Size())
}

func TestSmooth_NilGraph(t *testing.T) {
	assert.ErrorIs(t, smooth.Smooth(nil), smooth.ErrNilGraph)
}

// A second smoothing pass re-propagates the already-propagated credits and
// must not error; the graph stays structurally intact.
func TestSmooth_RepeatedRuns(t *testing.T) {
	g := chainGraph(t)
	require.NoError(t, smooth.Smooth(g))
	require.NoError(t, smooth.Smooth(g))
	assert.Equal(t, 5, g.Order())
}
