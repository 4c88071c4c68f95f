package kgraph

import "errors"

// Sentinel errors for k-mer graph construction and optimization.
var (
	// ErrNilGraph indicates a nil splice graph was passed in.
	ErrNilGraph = errors.New("kgraph: splice graph is nil")

	// ErrBadK indicates a window size below 1.
	ErrBadK = errors.New("kgraph: window size k must be >= 1")

	// ErrBadKRange indicates kmin < 1 or kmax < kmin.
	ErrBadKRange = errors.New("kgraph: invalid k range")

	// ErrBadThreshold indicates a sensitivity threshold outside [0,1].
	ErrBadThreshold = errors.New("kgraph: sensitivity threshold must be in [0,1]")

	// ErrUnknownPolicy indicates an unrecognized dangling-end policy value.
	ErrUnknownPolicy = errors.New("kgraph: unknown dangling-end policy")

	// ErrNoAdmissibleK is returned by Optimize when even the smallest
	// candidate k fails the sensitivity threshold, so no (graph, k) pair was
	// ever accepted. Callers must handle this explicitly; there is no
	// implicit fallback.
	ErrNoAdmissibleK = errors.New("kgraph: no candidate k meets the sensitivity threshold")
)

// VertexID identifies one vertex of a k-mer graph. Non-negative ids index the
// dense vertex table; the two sentinels are reserved negative ids.
type VertexID int

// Reserved sentinel vertices. Every Graph owns both from construction; they
// carry no score and no smoothing accumulators, and dangling-end resolution
// never removes them.
const (
	// Source is the global entry sentinel. A path that starts at a leaf
	// source of the splice graph is anchored to it.
	Source VertexID = -1

	// Sink is the global exit sentinel, the counterpart of Source.
	Sink VertexID = -2
)

// Policy selects how ResolveDangling repairs vertices with no predecessor or
// no successor.
type Policy uint8

const (
	// PolicyClip removes dangling vertices transitively to a fixed point,
	// accounting their total score as clipped mass. This is the policy the
	// assembly pipeline runs.
	PolicyClip Policy = iota

	// PolicyConnect instead attaches Source to every vertex lacking a
	// predecessor and every vertex lacking a successor to Sink, in one pass.
	// No score is lost. Exposed for integrators; the documented pipeline
	// does not invoke it.
	PolicyConnect
)

// Clipped reports the outcome of one ResolveDangling call: the removed vertex
// ids (ascending) and the total score they carried. Under PolicyConnect both
// fields are zero.
type Clipped struct {
	Removed []VertexID
	Score   float64
}
