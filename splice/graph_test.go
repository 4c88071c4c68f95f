package splice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

func TestGraph_Leaves(t *testing.T) {
	// 1 → 2 → 3 with a side branch 2 → 4: sources {1}, sinks {3, 4}.
	g := splice.NewGraph()
	for id := splice.NodeID(1); id <= 4; id++ {
		g.AddNode(id, transcript.Exon{Start: int64(id) * 100, End: int64(id)*100 + 50})
	}
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(2, 4))

	sources, sinks := g.Leaves()
	assert.Contains(t, sources, splice.NodeID(1))
	assert.Len(t, sources, 1)
	assert.Contains(t, sinks, splice.NodeID(3))
	assert.Contains(t, sinks, splice.NodeID(4))
	assert.Len(t, sinks, 2)
}

func TestGraph_EdgeToUnknownNode(t *testing.T) {
	g := splice.NewGraph()
	g.AddNode(1, transcript.Exon{Start: 0, End: 10})
	assert.ErrorIs(t, g.AddEdge(1, 99), splice.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(99, 1), splice.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetChain(99, nil), splice.ErrNodeNotFound)
}

func TestGraph_Expand(t *testing.T) {
	g := splice.NewGraph()
	g.AddNode(1, transcript.Exon{Start: 0, End: 10})
	g.AddNode(2, transcript.Exon{Start: 10, End: 40})

	chain := []transcript.Exon{{Start: 10, End: 20}, {Start: 30, End: 40}}
	require.NoError(t, g.SetChain(2, chain))

	// plain node expands to its own exon, chain node to its full run
	assert.Equal(t, []transcript.Exon{{Start: 0, End: 10}}, g.Expand(1))
	assert.Equal(t, chain, g.Expand(2))
}

func TestPartialPath_Validate(t *testing.T) {
	ok := splice.PartialPath{Nodes: []splice.NodeID{1, 2}, Score: 0}
	assert.NoError(t, ok.Validate())

	empty := splice.PartialPath{Score: 1}
	assert.ErrorIs(t, empty.Validate(), splice.ErrEmptyPath)

	for _, score := range []float64{-1, math.NaN(), math.Inf(1)} {
		bad := splice.PartialPath{Nodes: []splice.NodeID{1}, Score: score}
		assert.ErrorIs(t, bad.Validate(), splice.ErrBadScore, "score %v", score)
	}

	assert.ErrorIs(t, splice.ValidatePaths([]splice.PartialPath{ok, empty}), splice.ErrEmptyPath)
	assert.NoError(t, splice.ValidatePaths(nil))
}
