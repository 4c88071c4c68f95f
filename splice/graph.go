package splice

import (
	"fmt"

	"github.com/Xiuying/assemblyline/transcript"
)

// Graph is a directed splice graph over exon-segment nodes.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	exons  map[NodeID]transcript.Exon
	chains map[NodeID][]transcript.Exon
	out    map[NodeID]map[NodeID]struct{}
	in     map[NodeID]map[NodeID]struct{}
}

// NewGraph returns an empty splice graph.
func NewGraph() *Graph {
	return &Graph{
		exons:  make(map[NodeID]transcript.Exon),
		chains: make(map[NodeID][]transcript.Exon),
		out:    make(map[NodeID]map[NodeID]struct{}),
		in:     make(map[NodeID]map[NodeID]struct{}),
	}
}

// AddNode inserts node id covering the given exon. Re-adding an existing id
// overwrites its exon and leaves its edges untouched.
func (g *Graph) AddNode(id NodeID, exon transcript.Exon) {
	g.exons[id] = exon
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[NodeID]struct{})
		g.in[id] = make(map[NodeID]struct{})
	}
}

// SetChain records that node id was collapsed upstream from the given ordered
// exon run. The chain replaces the node in place during reconstruction.
func (g *Graph) SetChain(id NodeID, chain []transcript.Exon) error {
	if _, ok := g.exons[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.chains[id] = chain
	return nil
}

// AddEdge inserts the directed edge u→v. Both endpoints must already exist.
// Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v NodeID) error {
	if _, ok := g.exons[u]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if _, ok := g.exons[v]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	g.out[u][v] = struct{}{}
	g.in[v][u] = struct{}{}
	return nil
}

// HasNode reports whether node id exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.exons[id]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.exons) }

// InDegree returns the number of predecessors of id (0 for unknown ids).
func (g *Graph) InDegree(id NodeID) int { return len(g.in[id]) }

// OutDegree returns the number of successors of id (0 for unknown ids).
func (g *Graph) OutDegree(id NodeID) int { return len(g.out[id]) }

// Leaves returns the graph-wide leaf sets: sources (nodes with no incoming
// edge) and sinks (nodes with no outgoing edge). A partial path qualifies as
// full-length only if it starts at a source leaf and ends at a sink leaf.
func (g *Graph) Leaves() (sources, sinks map[NodeID]struct{}) {
	sources = make(map[NodeID]struct{})
	sinks = make(map[NodeID]struct{})
	for id := range g.exons {
		if len(g.in[id]) == 0 {
			sources[id] = struct{}{}
		}
		if len(g.out[id]) == 0 {
			sinks[id] = struct{}{}
		}
	}
	return sources, sinks
}

// Expand returns the exon run node id stands for: its recorded chain when one
// exists, otherwise its single exon.
func (g *Graph) Expand(id NodeID) []transcript.Exon {
	if chain, ok := g.chains[id]; ok {
		return chain
	}
	return []transcript.Exon{g.exons[id]}
}
