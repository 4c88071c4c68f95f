package kgraph

import (
	"fmt"
	"math"

	"github.com/Xiuying/assemblyline/splice"
)

// Stats captures the per-candidate diagnostics of one Optimize iteration.
type Stats struct {
	K               int
	Vertices        int
	Edges           int
	LostPaths       int
	LostScore       float64
	ClippedVertices int
	ClippedScore    float64
	Sensitivity     float64
}

// Result is the outcome of a successful Optimize call: the winning graph and
// window size, plus the diagnostics trace of every candidate tried.
type Result struct {
	Graph *Graph
	K     int
	Trace []Stats
}

// Optimize finds the largest admissible window size: it walks k ascending
// over [kmin, kmax], builds a fresh graph at each candidate (build, resolve
// short paths, clip dangling ends), and scores the candidate by sensitivity —
// the fraction of length-weighted input score retained after subtracting lost
// short paths and clipped vertices. Longer paths carry proportionally more
// evidence mass, hence the length weighting.
//
// The first candidate whose sensitivity falls below threshold stops the
// search; the result is the last accepted (graph, k). If no candidate is ever
// accepted, Optimize returns ErrNoAdmissibleK.
//
// An empty path set has zero total score; sensitivity is then defined as 1,
// so every candidate is trivially admissible and the search runs to kmax.
func Optimize(sg *splice.Graph, paths []splice.PartialPath, kmin, kmax int, threshold float64) (*Result, error) {
	// 1) Validate arguments.
	if sg == nil {
		return nil, ErrNilGraph
	}
	if kmin < 1 || kmax < kmin {
		return nil, fmt.Errorf("%w: kmin=%d kmax=%d", ErrBadKRange, kmin, kmax)
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadThreshold, threshold)
	}
	if err := splice.ValidatePaths(paths); err != nil {
		return nil, err
	}

	// 2) Length-weighted total evidence mass.
	total := 0.0
	for _, p := range paths {
		total += float64(p.Len()) * p.Score
	}

	// 3) Ascending search with early stop.
	res := &Result{}
	for k := kmin; k <= kmax; k++ {
		g, short, err := Build(sg, paths, k)
		if err != nil {
			return nil, err
		}
		lost := g.ResolveShortPaths(short)
		clipped, err := g.ResolveDangling(PolicyClip)
		if err != nil {
			return nil, err
		}
		lostScore := 0.0
		for _, p := range lost {
			lostScore += float64(p.Len()) * p.Score
		}
		sensitivity := 1.0
		if total > 0 {
			sensitivity = (total - lostScore - clipped.Score) / total
		}
		res.Trace = append(res.Trace, Stats{
			K:               k,
			Vertices:        g.Order(),
			Edges:           g.Size(),
			LostPaths:       len(lost),
			LostScore:       lostScore,
			ClippedVertices: len(clipped.Removed),
			ClippedScore:    clipped.Score,
			Sensitivity:     sensitivity,
		})
		if sensitivity < threshold {
			break
		}
		res.Graph, res.K = g, k
	}
	if res.Graph == nil {
		return nil, fmt.Errorf("%w: kmin=%d sensitivity=%.4f threshold=%.4f",
			ErrNoAdmissibleK, kmin, res.Trace[0].Sensitivity, threshold)
	}
	return res, nil
}
