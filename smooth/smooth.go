// Package smooth spreads deposited-path boundary mass through the k-mer
// graph so that vertex scores reflect evidence beyond the exact windows the
// input fragments happened to cover.
//
// During construction every deposited path credits its first window with the
// path score on the reverse accumulator and its last window on the forward
// accumulator: those boundaries mark where evidence stopped, not where the
// transcript did. Smooth propagates each forward credit to the vertex's
// successors and each reverse credit to its predecessors, proportionally to
// the neighbors' existing scores, in topological order so mass cascades all
// the way to the graph's ends. The redistributed mass collects in the scratch
// accumulator and is folded into the vertex scores at the end.
//
// Smooth mutates scores only; the vertex and edge sets are preserved exactly.
//
// Complexity: O(V + E) per direction after the O(V + E) topological sort.
package smooth

import (
	"errors"

	"github.com/Xiuying/assemblyline/kgraph"
)

// Sentinel errors for smoothing.
var (
	// ErrNilGraph is returned when a nil graph is passed to Smooth.
	ErrNilGraph = errors.New("smooth: graph is nil")

	// ErrCycle is returned when the graph is not acyclic; smoothing order is
	// undefined on cycles.
	ErrCycle = errors.New("smooth: k-mer graph contains a cycle")
)

// credits below this mass are not worth propagating
const minSmoothScore = 1e-8

// Smooth redistributes the forward and reverse smoothing credits of every
// vertex and folds the result into the vertex scores. Topology is untouched.
func Smooth(g *kgraph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	order, err := topoOrder(g)
	if err != nil {
		return err
	}

	// forward: push each vertex's forward credit onto its successors
	for _, u := range order {
		spread(g, u, g.SmoothFwd(u), g.Successors(u), g.AddSmoothFwd)
	}
	// reverse: walk the order backwards, pushing reverse credit onto predecessors
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		spread(g, u, g.SmoothRev(u), g.Predecessors(u), g.AddSmoothRev)
	}
	// fold the collected scratch mass into the scores
	for _, v := range order {
		g.AddScore(v, g.SmoothTmp(v))
	}
	return nil
}

// spread divides mass among neighbors proportionally to their current scores.
// Neighbors with zero total score (e.g. a lone sentinel) absorb nothing.
func spread(g *kgraph.Graph, u kgraph.VertexID, mass float64, neighbors []kgraph.VertexID, credit func(kgraph.VertexID, float64)) {
	if mass < minSmoothScore {
		return
	}
	total := 0.0
	for _, v := range neighbors {
		total += g.Score(v)
	}
	if total == 0 {
		return
	}
	for _, v := range neighbors {
		adj := mass * (g.Score(v) / total)
		g.AddSmoothTmp(v, adj)
		credit(v, adj)
	}
}

// topoOrder returns a Kahn ordering of every live vertex, or ErrCycle when
// some vertex is never released.
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
