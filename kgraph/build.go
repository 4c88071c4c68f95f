package kgraph

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/Xiuying/assemblyline/splice"
)

// ShortPaths buckets the partial paths Build deferred because they were
// shorter than k and not full-length, grouped by path length. Each bucket is
// resolved only against the graph built at the same k.
type ShortPaths struct {
	buckets map[int][]splice.PartialPath
}

// Empty reports whether no path was deferred.
func (s *ShortPaths) Empty() bool { return len(s.buckets) == 0 }

// Lengths returns the distinct deferred path lengths in ascending order.
func (s *ShortPaths) Lengths() []int {
	ls := make([]int, 0, len(s.buckets))
	for l := range s.buckets {
		ls = append(ls, l)
	}
	sort.Ints(ls)
	return ls
}

// Build converts partial paths into a k-mer graph at window size k.
//
// For each path it decides full-length status against the splice graph's leaf
// sets (a path is full-length when its first node is a source leaf and its
// last node a sink leaf), then either defers the path (shorter than k, not
// full-length) or deposits its window sequence: Source is prepended when the
// path starts at a source leaf, Sink appended when it ends at a sink leaf, a
// full-length path shorter than k becomes the single window equal to the
// whole path, and every other path contributes one window per k-length slice.
// Shared windows collapse into one vertex accumulating every contributing
// path's score.
//
// Partial paths must already be validated (non-empty, finite non-negative
// score); Build checks only its own arguments.
func Build(sg *splice.Graph, paths []splice.PartialPath, k int) (*Graph, *ShortPaths, error) {
	// 1) Validate arguments.
	if sg == nil {
		return nil, nil, ErrNilGraph
	}
	if k < 1 {
		return nil, nil, fmt.Errorf("%w: k=%d", ErrBadK, k)
	}

	// 2) Leaf sets come from the original splice graph, not the k-mer graph.
	sources, sinks := sg.Leaves()

	// 3) Deposit each placeable path; defer the rest by length.
	g := newGraph(k)
	ids := make(map[string]VertexID)
	short := &ShortPaths{buckets: make(map[int][]splice.PartialPath)}
	seq := make([]VertexID, 0, 16)
	for _, p := range paths {
		_, isStart := sources[p.Nodes[0]]
		_, isEnd := sinks[p.Nodes[len(p.Nodes)-1]]
		if p.Len() < k && !(isStart && isEnd) {
			short.buckets[p.Len()] = append(short.buckets[p.Len()], p)
			continue
		}
		seq = seq[:0]
		if isStart {
			seq = append(seq, Source)
		}
		if p.Len() < k {
			// short but full-length: the whole path is one window
			seq = append(seq, g.intern(ids, p.Nodes))
		} else {
			for i := 0; i+k <= p.Len(); i++ {
				seq = append(seq, g.intern(ids, p.Nodes[i:i+k]))
			}
		}
		if isEnd {
			seq = append(seq, Sink)
		}
		g.depositPath(seq, p.Score)
	}
	return g, short, nil
}

// depositPath adds one window sequence to the graph: every non-sentinel
// vertex on it gains the path score, consecutive vertices are connected, and
// the first and last real window receive the reverse and forward smoothing
// credit marking a deposited path boundary.
func (g *Graph) depositPath(seq []VertexID, score float64) {
	first, last := VertexID(-1), VertexID(-1)
	for i, id := range seq {
		if i > 0 {
			g.addEdge(seq[i-1], id)
		}
		if id == Source || id == Sink {
			continue
		}
		g.score[id] += score
		if first < 0 {
			first = id
		}
		last = id
	}
	if first >= 0 {
		g.smoothRev[first] += score
		g.smoothFwd[last] += score
	}
}

// tupleKey encodes a node-id tuple as the exact byte key used to deduplicate
// window vertices.
func tupleKey(nodes []splice.NodeID) string {
	buf := make([]byte, 8*len(nodes))
	for i, n := range nodes {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(n))
	}
	return string(buf)
}
