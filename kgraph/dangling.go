package kgraph

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// ResolveDangling repairs fragmentation: vertices with no predecessor or no
// successor (sentinels excepted) indicate evidence fragments that cannot lie
// on any Source→Sink path.
//
// PolicyClip removes every such vertex and re-examines the neighbors each
// removal exposes, to a fixed point, returning the removed ids and their
// total score. PolicyConnect instead wires Source to every predecessor-less
// vertex and every successor-less vertex to Sink in a single pass; nothing is
// removed and no score is lost.
func (g *Graph) ResolveDangling(policy Policy) (Clipped, error) {
	switch policy {
	case PolicyClip:
		return g.clipDanglingEnds(), nil
	case PolicyConnect:
		g.connectDanglingEnds()
		return Clipped{}, nil
	default:
		return Clipped{}, fmt.Errorf("%w: %d", ErrUnknownPolicy, policy)
	}
}

// clipDanglingEnds runs the work-queue fixpoint: the frontier seeds with the
// current zero-degree set and every removal enqueues the neighbors it
// exposes. Each vertex is removed at most once, so the loop terminates.
func (g *Graph) clipDanglingEnds() Clipped {
	var (
		frontier []VertexID
		queued   = bitset.New(uint(len(g.kmers)))
		removed  []VertexID
		score    float64
	)
	enqueue := func(id VertexID) {
		if id >= 0 && g.alive(id) && !queued.Test(uint(id)) {
			queued.Set(uint(id))
			frontier = append(frontier, id)
		}
	}
	for i := range g.kmers {
		enqueue(VertexID(i))
	}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		queued.Clear(uint(id))
		if !g.alive(id) {
			continue
		}
		ind, outd := g.InDegree(id), g.OutDegree(id)
		if ind > 0 && outd > 0 {
			continue
		}
		// removal exposes the far side: successors of a head-less vertex,
		// predecessors of a tail-less one
		var exposed []VertexID
		if ind == 0 {
			exposed = g.Successors(id)
		} else {
			exposed = g.Predecessors(id)
		}
		score += g.score[id]
		removed = append(removed, id)
		g.removeVertex(id)
		for _, n := range exposed {
			enqueue(n)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return Clipped{Removed: removed, Score: score}
}

// connectDanglingEnds collects the rewiring first and applies it after the
// scan; a single pass suffices because every vertex becomes reachable once
// anchored to a sentinel.
func (g *Graph) connectDanglingEnds() {
	type edge struct{ u, v VertexID }
	var add []edge
	for i := range g.kmers {
		id := VertexID(i)
		if !g.alive(id) {
			continue
		}
		if g.InDegree(id) == 0 {
			add = append(add, edge{Source, id})
		}
		if g.OutDegree(id) == 0 {
			add = append(add, edge{id, Sink})
		}
	}
	for _, e := range add {
		g.addEdge(e.u, e.v)
	}
}
