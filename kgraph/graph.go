package kgraph

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/Xiuying/assemblyline/splice"
)

// Graph is a directed graph over k-mer vertices plus the Source and Sink
// sentinels.
//
// Non-sentinel vertices are identified by dense ids indexing a flat vertex
// table: the node-id tuple that is the vertex's identity, its accumulated
// score, and the three smoothing accumulators consumed by the external
// smoother. Construct with Build; the zero value is not usable.
type Graph struct {
	k int

	// vertex table, indexed by dense VertexID
	kmers     [][]splice.NodeID
	score     []float64
	smoothFwd []float64
	smoothRev []float64
	smoothTmp []float64

	// forward and reverse adjacency; sentinel entries always present
	out map[VertexID]map[VertexID]struct{}
	in  map[VertexID]map[VertexID]struct{}

	// dense ids removed by clipping
	dead *bitset.BitSet
}

func newGraph(k int) *Graph {
	g := &Graph{
		k:    k,
		out:  make(map[VertexID]map[VertexID]struct{}),
		in:   make(map[VertexID]map[VertexID]struct{}),
		dead: bitset.New(0),
	}
	g.out[Source] = make(map[VertexID]struct{})
	g.in[Source] = make(map[VertexID]struct{})
	g.out[Sink] = make(map[VertexID]struct{})
	g.in[Sink] = make(map[VertexID]struct{})
	return g
}

// intern returns the vertex id owning the given tuple, creating a fresh
// zero-score vertex when the tuple is new. ids is the build-time dedupe map
// from tuple key to id; it does not outlive construction.
func (g *Graph) intern(ids map[string]VertexID, tuple []splice.NodeID) VertexID {
	key := tupleKey(tuple)
	if id, ok := ids[key]; ok {
		return id
	}
	id := VertexID(len(g.kmers))
	ids[key] = id
	g.kmers = append(g.kmers, append([]splice.NodeID(nil), tuple...))
	g.score = append(g.score, 0)
	g.smoothFwd = append(g.smoothFwd, 0)
	g.smoothRev = append(g.smoothRev, 0)
	g.smoothTmp = append(g.smoothTmp, 0)
	g.out[id] = make(map[VertexID]struct{})
	g.in[id] = make(map[VertexID]struct{})
	return id
}

func (g *Graph) addEdge(u, v VertexID) {
	g.out[u][v] = struct{}{}
	g.in[v][u] = struct{}{}
}

// removeVertex detaches id from all neighbors and marks it dead.
func (g *Graph) removeVertex(id VertexID) {
	for v := range g.out[id] {
		delete(g.in[v], id)
	}
	for u := range g.in[id] {
		delete(g.out[u], id)
	}
	delete(g.out, id)
	delete(g.in, id)
	g.dead.Set(uint(id))
}

func (g *Graph) alive(id VertexID) bool {
	if id == Source || id == Sink {
		return true
	}
	return id >= 0 && int(id) < len(g.kmers) && !g.dead.Test(uint(id))
}

// K returns the window size this graph was built at.
func (g *Graph) K() int { return g.k }

// Order returns the number of live vertices, sentinels included.
func (g *Graph) Order() int { return len(g.out) }

// Size returns the number of edges.
func (g *Graph) Size() int {
	n := 0
	for _, succ := range g.out {
		n += len(succ)
	}
	return n
}

// HasVertex reports whether id is a live vertex of the graph. The sentinels
// are always present.
func (g *Graph) HasVertex(id VertexID) bool { return g.alive(id) }

// Kmer returns the node-id tuple identifying vertex id, or nil for sentinels
// and unknown ids. The returned slice must not be mutated.
func (g *Graph) Kmer(id VertexID) []splice.NodeID {
	if id < 0 || int(id) >= len(g.kmers) {
		return nil
	}
	return g.kmers[id]
}

// Find returns the live vertex whose tuple equals nodes. Linear in the vertex
// count; the build-time dedupe index is discarded once construction ends.
func (g *Graph) Find(nodes []splice.NodeID) (VertexID, bool) {
	for i, tuple := range g.kmers {
		id := VertexID(i)
		if !g.alive(id) || len(tuple) != len(nodes) {
			continue
		}
		if equalNodes(tuple, nodes) {
			return id, true
		}
	}
	return 0, false
}

// Vertices returns every live vertex id: Source, Sink, then dense ids
// ascending.
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, 0, g.Order())
	ids = append(ids, Source, Sink)
	for i := range g.kmers {
		if id := VertexID(i); g.alive(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Successors returns the successors of id in ascending order.
func (g *Graph) Successors(id VertexID) []VertexID {
	return sortedNeighbors(g.out[id])
}

// Predecessors returns the predecessors of id in ascending order.
func (g *Graph) Predecessors(id VertexID) []VertexID {
	return sortedNeighbors(g.in[id])
}

// InDegree returns the number of predecessors of id.
func (g *Graph) InDegree(id VertexID) int { return len(g.in[id]) }

// OutDegree returns the number of successors of id.
func (g *Graph) OutDegree(id VertexID) int { return len(g.out[id]) }

// Score returns the accumulated score of vertex id; sentinels and removed
// vertices score 0.
func (g *Graph) Score(id VertexID) float64 {
	if !g.alive(id) || id < 0 {
		return 0
	}
	return g.score[id]
}

// AddScore adds delta to the score of vertex id. Adds to sentinels or removed
// vertices are ignored.
func (g *Graph) AddScore(id VertexID, delta float64) {
	if g.alive(id) && id >= 0 {
		g.score[id] += delta
	}
}

// TotalScore returns the summed score of all live vertices.
func (g *Graph) TotalScore() float64 {
	total := 0.0
	for i := range g.score {
		if g.alive(VertexID(i)) {
			total += g.score[i]
		}
	}
	return total
}

// SmoothFwd returns the forward smoothing accumulator of vertex id.
func (g *Graph) SmoothFwd(id VertexID) float64 { return g.smoothAt(g.smoothFwd, id) }

// SmoothRev returns the reverse smoothing accumulator of vertex id.
func (g *Graph) SmoothRev(id VertexID) float64 { return g.smoothAt(g.smoothRev, id) }

// SmoothTmp returns the scratch smoothing accumulator of vertex id.
func (g *Graph) SmoothTmp(id VertexID) float64 { return g.smoothAt(g.smoothTmp, id) }

// AddSmoothFwd adds delta to the forward accumulator of vertex id.
func (g *Graph) AddSmoothFwd(id VertexID, delta float64) { g.smoothAdd(g.smoothFwd, id, delta) }

// AddSmoothRev adds delta to the reverse accumulator of vertex id.
func (g *Graph) AddSmoothRev(id VertexID, delta float64) { g.smoothAdd(g.smoothRev, id, delta) }

// AddSmoothTmp adds delta to the scratch accumulator of vertex id.
func (g *Graph) AddSmoothTmp(id VertexID, delta float64) { g.smoothAdd(g.smoothTmp, id, delta) }

func (g *Graph) smoothAt(attr []float64, id VertexID) float64 {
	if !g.alive(id) || id < 0 {
		return 0
	}
	return attr[id]
}

func (g *Graph) smoothAdd(attr []float64, id VertexID, delta float64) {
	if g.alive(id) && id >= 0 {
		attr[id] += delta
	}
}

func sortedNeighbors(set map[VertexID]struct{}) []VertexID {
	ids := make([]VertexID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func equalNodes(a, b []splice.NodeID) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
