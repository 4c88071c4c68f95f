// Package assemble orchestrates the full isoform-assembly pipeline for one
// splice-graph locus: window-size optimization, score smoothing, suboptimal
// path enumeration, and reconstruction of each abstract k-mer path back into
// genomic exon coordinates.
//
// Pipeline:
//
//	partial paths → kgraph.Optimize (build + short-path resolution + clip,
//	iterated over k) → smooth.Smooth → pathfinder.FindPaths → exon
//	reconstruction → one transcript.PathInfo per enumerated isoform.
//
// One Assemble call owns all of its intermediate state; independent loci may
// be assembled concurrently by an outer scheduler.
package assemble

import (
	"errors"
	"fmt"

	"github.com/Xiuying/assemblyline/kgraph"
	"github.com/Xiuying/assemblyline/pathfinder"
	"github.com/Xiuying/assemblyline/smooth"
	"github.com/Xiuying/assemblyline/splice"
	"github.com/Xiuying/assemblyline/transcript"
)

// Sentinel errors for assembly preconditions.
var (
	// ErrNilGraph is returned when the splice graph is nil.
	ErrNilGraph = errors.New("assemble: splice graph is nil")

	// ErrBadMaxPaths is returned when Options.MaxPaths is not positive.
	ErrBadMaxPaths = errors.New("assemble: MaxPaths must be positive")

	// ErrBadKmax is returned when Options.KmaxUser is negative.
	ErrBadKmax = errors.New("assemble: KmaxUser must be >= 0")
)

// Options are the assembly tunables.
//
// The two fractional parameters are clamped into [0,1] rather than rejected;
// MaxPaths and KmaxUser are validated strictly.
type Options struct {
	// KmaxUser caps the window-size search. 0 derives the cap from the
	// longest partial path.
	KmaxUser int

	// KSensitivity is the minimum fraction of length-weighted input score a
	// candidate k must retain. 0 disables the search and forces k = kmax.
	KSensitivity float64

	// FractionMajorPath is the minimum score, as a fraction of the best
	// path's score, for an isoform to be enumerated.
	FractionMajorPath float64

	// MaxPaths caps the number of enumerated isoforms.
	MaxPaths int
}

// DefaultOptions returns the assembly defaults: automatic kmax, 0.90
// sensitivity floor, isoforms within 10% of the major path, at most 1000
// paths.
func DefaultOptions() Options {
	return Options{
		KmaxUser:          0,
		KSensitivity:      0.90,
		FractionMajorPath: 0.10,
		MaxPaths:          1000,
	}
}

// TranscriptGraph assembles the isoforms of one locus: it selects the window
// size via kgraph.Optimize, smooths the winning graph, enumerates suboptimal
// Source→Sink paths, and reconstructs each into an exon sequence running from
// smaller to larger genomic coordinate.
//
// An empty partial-path set carries no evidence and yields no isoforms.
// kgraph.ErrNoAdmissibleK propagates unchanged when even k=1 misses the
// sensitivity floor.
func TranscriptGraph(sg *splice.Graph, strand transcript.Strand, paths []splice.PartialPath, opts Options) ([]transcript.PathInfo, error) {
	// 1) Fail-fast preconditions.
	if sg == nil {
		return nil, ErrNilGraph
	}
	if opts.MaxPaths <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxPaths, opts.MaxPaths)
	}
	if opts.KmaxUser < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadKmax, opts.KmaxUser)
	}
	if err := splice.ValidatePaths(paths); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	// 2) Clamp fractional parameters into range.
	ksensitivity := clamp01(opts.KSensitivity)
	fractionMajor := clamp01(opts.FractionMajorPath)

	// 3) Resolve the k search range.
	kmax := opts.KmaxUser
	if kmax == 0 {
		for _, p := range paths {
			if p.Len() > kmax {
				kmax = p.Len()
			}
		}
	}
	kmin := kmax
	if ksensitivity > 0 {
		kmin = 1
	}

	// 4) Optimize k, smooth, enumerate.
	res, err := kgraph.Optimize(sg, paths, kmin, kmax, ksensitivity)
	if err != nil {
		return nil, err
	}
	if err := smooth.Smooth(res.Graph); err != nil {
		return nil, err
	}
	found, err := pathfinder.FindPaths(res.Graph, kgraph.Source, kgraph.Sink, fractionMajor, opts.MaxPaths)
	if err != nil {
		return nil, err
	}

	// 5) Reconstruct exon models.
	var infos []transcript.PathInfo
	for _, p := range found {
		nodes := reconstructNodes(res.Graph, p.Vertices)
		if nodes == nil {
			continue
		}
		infos = append(infos, transcript.PathInfo{
			Score: p.Score,
			Exons: expandPathChains(sg, strand, nodes),
		})
	}
	return infos, nil
}

// reconstructNodes recovers the splice-node sequence underlying a
// Source→Sink k-mer path: the full tuple of the first real window, then the
// last element of every subsequent window. Consecutive windows on a path
// overlap in all but one position, so each contributes exactly one new node.
func reconstructNodes(g *kgraph.Graph, vertices []kgraph.VertexID) []splice.NodeID {
	if len(vertices) < 3 {
		return nil
	}
	nodes := append([]splice.NodeID(nil), g.Kmer(vertices[1])...)
	for _, v := range vertices[2 : len(vertices)-1] {
		tuple := g.Kmer(v)
		nodes = append(nodes, tuple[len(tuple)-1])
	}
	return nodes
}

// expandPathChains turns a splice-node sequence into its final exon model:
// negative-strand paths are reversed so exons run small→large, chain nodes
// are replaced by their full exon runs in place, and runs of touching exons
// collapse into single maximal exons.
func expandPathChains(sg *splice.Graph, strand transcript.Strand, nodes []splice.NodeID) []transcript.Exon {
	if strand == transcript.StrandNeg {
		for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
	}
	var exons []transcript.Exon
	for _, n := range nodes {
		exons = append(exons, sg.Expand(n)...)
	}
	// collapse touching runs into maximal exons
	merged := make([]transcript.Exon, 0, len(exons))
	run := exons[0]
	for _, e := range exons[1:] {
		if run.End != e.Start {
			merged = append(merged, run)
			run = e
			continue
		}
		run.End = e.End
	}
	return append(merged, run)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
