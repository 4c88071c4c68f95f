// Package splice defines the input side of the assembly pipeline: the splice
// graph of exon segments produced upstream from aligned coverage, and the
// scored partial paths (fragments of read evidence) drawn from it.
//
// A splice.Graph is a directed graph over dense integer node identifiers.
// Each node carries the Exon it covers; a node that was collapsed upstream
// from a run of exons additionally carries the full ordered chain, which is
// substituted back in during transcript reconstruction.
//
// Graphs and paths here are owned by a single assembly invocation and are
// never mutated after construction, so no locking is performed.
//
// Errors (sentinel):
//
//	– ErrNodeNotFound  a referenced node id is absent from the graph.
//	– ErrEmptyPath     a partial path has no nodes.
//	– ErrBadScore      a partial path score is negative, NaN or infinite.
package splice

import (
	"errors"
	"math"
)

// Sentinel errors for splice-graph and partial-path validation.
var (
	// ErrNodeNotFound indicates an edge or path referenced an unknown node id.
	ErrNodeNotFound = errors.New("splice: node not found")

	// ErrEmptyPath indicates a partial path with zero nodes, which carries no
	// evidence and is a precondition violation upstream.
	ErrEmptyPath = errors.New("splice: partial path is empty")

	// ErrBadScore indicates a partial path score that is negative, NaN or
	// infinite.
	ErrBadScore = errors.New("splice: partial path score must be finite and non-negative")
)

// NodeID identifies one vertex of the splice graph. Identifiers are
// non-negative and dense within one locus.
type NodeID int

// PartialPath is one fragment of scored evidence: a non-empty ordered node
// sequence together with its support score.
type PartialPath struct {
	Nodes []NodeID
	Score float64
}

// Len returns the number of nodes on the path.
func (p PartialPath) Len() int { return len(p.Nodes) }

// Validate checks the partial-path preconditions: a non-empty node sequence
// and a finite, non-negative score.
func (p PartialPath) Validate() error {
	if len(p.Nodes) == 0 {
		return ErrEmptyPath
	}
	if p.Score < 0 || math.IsNaN(p.Score) || math.IsInf(p.Score, 0) {
		return ErrBadScore
	}
	return nil
}

// ValidatePaths validates every path in ps and returns the first violation.
func ValidatePaths(ps []PartialPath) error {
	for _, p := range ps {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
