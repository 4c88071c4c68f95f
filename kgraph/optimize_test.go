package kgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiuying/assemblyline/kgraph"
	"github.com/Xiuying/assemblyline/splice"
)

// lossy returns a locus where k=1 keeps everything but any k>=2 clips the
// heavy branch fragment {2,4}: at k=2 its only window (2,4) starts unanchored
// and is removed, costing 10 of the 23 length-weighted mass units.
func lossy(t *testing.T) (*splice.Graph, []splice.PartialPath) {
	t.Helper()
	sg := spliceGraph(t,
		[]splice.NodeID{1, 2, 3, 4},
		[][2]splice.NodeID{{1, 2}, {2, 3}, {2, 4}})
	return sg, []splice.PartialPath{
		path(1, 1, 2, 3),
		path(10, 2, 4),
	}
}

func TestOptimize_SingleCandidate(t *testing.T) {
	sg, paths := lossy(t)

	// kmin == kmax with the search disabled: exactly that k comes back.
	res, err := kgraph.Optimize(sg, paths, 2, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.K)
	assert.Len(t, res.Trace, 1)
}

func TestOptimize_EarlyStopKeepsBestSmallerK(t *testing.T) {
	sg, paths := lossy(t)

	res, err := kgraph.Optimize(sg, paths, 1, 5, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 1, res.K, "k=2 fails the threshold, so k=1 wins")

	// monotonic search: nothing beyond the first failing candidate is tried
	require.Len(t, res.Trace, 2)
	assert.Equal(t, 1.0, res.Trace[0].Sensitivity)
	assert.InDelta(t, 13.0/23.0, res.Trace[1].Sensitivity, 1e-12)
	assert.Equal(t, 10.0, res.Trace[1].ClippedScore)
}

func TestOptimize_NoAdmissibleK(t *testing.T) {
	sg, paths := lossy(t)

	_, err := kgraph.Optimize(sg, paths, 2, 4, 0.9)
	assert.ErrorIs(t, err, kgraph.ErrNoAdmissibleK)
}

// No evidence means nothing can be lost: sensitivity is defined as 1 and the
// search runs to kmax.
func TestOptimize_EmptyPathSet(t *testing.T) {
	sg, _ := lossy(t)

	res, err := kgraph.Optimize(sg, nil, 1, 3, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 3, res.K)
	for _, s := range res.Trace {
		assert.Equal(t, 1.0, s.Sensitivity)
	}
}

func TestOptimize_ArgumentValidation(t *testing.T) {
	sg, paths := lossy(t)

	_, err := kgraph.Optimize(nil, paths, 1, 2, 0.5)
	assert.ErrorIs(t, err, kgraph.ErrNilGraph)

	_, err = kgraph.Optimize(sg, paths, 0, 2, 0.5)
	assert.ErrorIs(t, err, kgraph.ErrBadKRange)

	_, err = kgraph.Optimize(sg, paths, 3, 2, 0.5)
	assert.ErrorIs(t, err, kgraph.ErrBadKRange)

	_, err = kgraph.Optimize(sg, paths, 1, 2, 1.5)
	assert.ErrorIs(t, err, kgraph.ErrBadThreshold)

	bad := []splice.PartialPath{{Nodes: nil, Score: 1}}
	_, err = kgraph.Optimize(sg, bad, 1, 2, 0.5)
	assert.ErrorIs(t, err, splice.ErrEmptyPath)
}

// Score conservation: retained + lost + clipped always equals the total
// length-weighted input mass, whatever the candidate k.
func TestOptimize_ScoreAccounting(t *testing.T) {
	sg, paths := lossy(t)
	total := 1.0*3 + 10.0*2

	res, err := kgraph.Optimize(sg, paths, 1, 2, 0)
	require.NoError(t, err)
	for _, s := range res.Trace {
		kept := s.Sensitivity * total
		assert.InDelta(t, total, kept+s.LostScore+s.ClippedScore, 1e-9, "k=%d", s.K)
	}
}
