package kgraph

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"github.com/Xiuying/assemblyline/splice"
)

// ResolveShortPaths redistributes every deferred short path's score across
// the live windows that contain it as a contiguous subsequence, and returns
// the paths that matched no window at all ("lost" evidence).
//
// One substring index is built per distinct deferred length. Redistribution
// is proportional to each matching window's score as of the built graph, so
// windows with stronger existing support absorb more of the short path's
// mass; when every match has zero score the mass is split uniformly. All
// increments are computed against the built graph's scores first and applied
// afterwards, so resolution order has no effect.
//
// Matched increments are deposited as single-window sequences: the window
// gains score plus both smoothing credits, and no edge is added.
func (g *Graph) ResolveShortPaths(short *ShortPaths) []splice.PartialPath {
	var lost []splice.PartialPath
	type credit struct {
		id    VertexID
		score float64
	}
	var credits []credit
	for _, l := range short.Lengths() {
		idx := g.hashWindows(l)
		for _, p := range short.buckets[l] {
			matches := idx.lookup(p.Nodes)
			if len(matches) == 0 {
				lost = append(lost, p)
				continue
			}
			denom := 0.0
			for _, id := range matches {
				denom += g.Score(id)
			}
			for _, id := range matches {
				var inc float64
				if denom == 0 {
					// degenerate: all matches unscored, split evenly
					inc = p.Score / float64(len(matches))
				} else {
					inc = p.Score * (g.Score(id) / denom)
				}
				credits = append(credits, credit{id: id, score: inc})
			}
		}
	}
	for _, c := range credits {
		g.depositPath([]VertexID{c.id}, c.score)
	}
	return lost
}

// windowIndex maps the 64-bit hash of each length-ℓ contiguous subsequence
// occurring inside a window tuple to the vertices containing it. Lookups
// verify candidates against the actual tuples, so hash collisions cannot
// produce a false match.
type windowIndex struct {
	g      *Graph
	length int
	byHash map[uint64][]VertexID
}

// hashWindows indexes every length-l contiguous subsequence of every live
// window tuple. Scoped to one resolution pass; never cached across k.
func (g *Graph) hashWindows(l int) *windowIndex {
	idx := &windowIndex{g: g, length: l, byHash: make(map[uint64][]VertexID)}
	buf := make([]byte, 8*l)
	for i, tuple := range g.kmers {
		id := VertexID(i)
		if !g.alive(id) {
			continue
		}
		for j := 0; j+l <= len(tuple); j++ {
			h := hashNodes(buf, tuple[j:j+l])
			idx.byHash[h] = appendUnique(idx.byHash[h], id)
		}
	}
	return idx
}

// lookup returns the vertices whose tuple contains nodes as a contiguous
// subsequence, in ascending id order.
func (idx *windowIndex) lookup(nodes []splice.NodeID) []VertexID {
	buf := make([]byte, 8*len(nodes))
	candidates := idx.byHash[hashNodes(buf, nodes)]
	matches := candidates[:0:0]
	for _, id := range candidates {
		if containsRun(idx.g.kmers[id], nodes) {
			matches = append(matches, id)
		}
	}
	return matches
}

func hashNodes(buf []byte, nodes []splice.NodeID) uint64 {
	for i, n := range nodes {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(n))
	}
	return xxhash.Sum64(buf[:8*len(nodes)])
}

func containsRun(tuple, nodes []splice.NodeID) bool {
	for j := 0; j+len(nodes) <= len(tuple); j++ {
		if equalNodes(tuple[j:j+len(nodes)], nodes) {
			return true
		}
	}
	return false
}

func appendUnique(ids []VertexID, id VertexID) []VertexID {
	if n := len(ids); n > 0 && ids[n-1] == id {
		return ids
	}
	return append(ids, id)
}
