// Package pathfinder enumerates a bounded set of high-scoring Source→Sink
// paths through a smoothed k-mer graph, one per plausible isoform.
//
// A path's score is its bottleneck: the minimum vertex score along it,
// sentinels excluded. The highest-bottleneck path is found by dynamic
// programming over a topological order, then its score is subtracted from
// every vertex on it so that shared segments are progressively consumed, and
// the search repeats. Enumeration stops at maxPaths entries, when the next
// path's score falls below fractionMajor times the best path's score, or when
// no positive-score path remains.
//
// Scores are read from a working copy; the graph itself is never mutated.
//
// Complexity: O(maxPaths · (V + E)) after one O(V + E) topological sort.
package pathfinder

import (
	"errors"
	"fmt"
	"math"

	"github.com/Xiuying/assemblyline/kgraph"
)

// Sentinel errors for path enumeration.
var (
	// ErrNilGraph is returned when a nil graph is passed to FindPaths.
	ErrNilGraph = errors.New("pathfinder: graph is nil")

	// ErrBadMaxPaths is returned when maxPaths is not positive.
	ErrBadMaxPaths = errors.New("pathfinder: maxPaths must be positive")

	// ErrBadFraction is returned when fractionMajor lies outside [0,1].
	ErrBadFraction = errors.New("pathfinder: fractionMajor must be in [0,1]")

	// ErrCycle is returned when the graph is not acyclic.
	ErrCycle = errors.New("pathfinder: k-mer graph contains a cycle")
)

// scores at or below this are treated as exhausted
const minPathScore = 1e-8

// Path is one enumerated Source→Sink vertex path and its bottleneck score.
type Path struct {
	Vertices []kgraph.VertexID
	Score    float64
}

// FindPaths enumerates up to maxPaths paths from source to sink in
// non-increasing likelihood, each scoring at least fractionMajor times the
// best path's score. An empty result (no error) means no positive-score path
// connects source to sink.
func FindPaths(g *kgraph.Graph, source, sink kgraph.VertexID, fractionMajor float64, maxPaths int) ([]Path, error) {
	// 1) Validate arguments.
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxPaths <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxPaths, maxPaths)
	}
	if math.IsNaN(fractionMajor) || fractionMajor < 0 || fractionMajor > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadFraction, fractionMajor)
	}

	// 2) Topological order once; every extraction reuses it.
	order, err := topoOrder(g)
	if err != nil {
		return nil, err
	}

	// 3) Working score copy. Sentinels never bound a bottleneck.
	work := make(map[kgraph.VertexID]float64, len(order))
	for _, v := range order {
		if v == source || v == sink {
			work[v] = math.Inf(1)
		} else {
			work[v] = g.Score(v)
		}
	}

	// 4) Extract best-bottleneck paths until a stop condition fires.
	var (
		paths     []Path
		bestScore float64
	)
	for len(paths) < maxPaths {
		vertices, score := bestBottleneckPath(g, order, work, source, sink)
		if vertices == nil || score <= minPathScore {
			break
		}
		if len(paths) == 0 {
			bestScore = score
		} else if score < fractionMajor*bestScore {
			break
		}
		// consume the extracted path's mass
		for _, v := range vertices {
			if v == source || v == sink {
				continue
			}
			work[v] = math.Max(0, work[v]-score)
		}
		paths = append(paths, Path{Vertices: vertices, Score: score})
	}
	return paths, nil
}

// bestBottleneckPath maximizes, over all source→sink paths, the minimum
// working score along the path. Returns (nil, 0) when sink is unreachable.
func bestBottleneckPath(g *kgraph.Graph, order []kgraph.VertexID, work map[kgraph.VertexID]float64, source, sink kgraph.VertexID) ([]kgraph.VertexID, float64) {
	reach := make(map[kgraph.VertexID]float64, len(order))
	pred := make(map[kgraph.VertexID]kgraph.VertexID, len(order))
	reach[source] = math.Inf(1)
	for _, u := range order {
		ru, ok := reach[u]
		if !ok {
			continue
		}
		for _, v := range g.Successors(u) {
			cand := math.Min(ru, work[v])
			if best, ok := reach[v]; !ok || cand > best {
				reach[v] = cand
				pred[v] = u
			}
		}
	}
	score, ok := reach[sink]
	if !ok {
		return nil, 0
	}
	// traceback sink → source
	var rev []kgraph.VertexID
	for v := sink; ; v = pred[v] {
		rev = append(rev, v)
		if v == source {
			break
		}
	}
	vertices := make([]kgraph.VertexID, len(rev))
	for i, v := range rev {
		vertices[len(rev)-1-i] = v
	}
	return vertices, score
}

func topoOrder(g *kgraph.Graph) ([]kgraph.VertexID, error) {
	vertices := g.Vertices()
	indeg := make(map[kgraph.VertexID]int, len(vertices))
	var queue []kgraph.VertexID
	for _, v := range vertices {
		indeg[v] = g.InDegree(v)
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	order := make([]kgraph.VertexID, 0, len(vertices))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range g.Successors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	if len(order) != len(vertices) {
		return nil, ErrCycle
	}
	return order, nil
}
