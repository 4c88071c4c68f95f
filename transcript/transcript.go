// Package transcript defines the genomic value types shared across the
// assembly pipeline: Exon (a half-open genomic interval), Strand (a two-valued
// orientation indicator), and PathInfo (one scored, enumerated isoform).
//
// All three types are immutable values; none of them owns mutable state, so
// they are safe to copy and share freely between packages.
package transcript

import "fmt"

// Strand is the orientation of a transcript locus.
type Strand int8

const (
	// StrandPos is the forward (+) genomic strand.
	StrandPos Strand = iota

	// StrandNeg is the reverse (−) genomic strand. Paths assembled on the
	// negative strand are reversed during reconstruction so that their exon
	// sequences always run from smaller to larger genomic coordinate.
	StrandNeg
)

// String returns "+" or "-".
func (s Strand) String() string {
	if s == StrandNeg {
		return "-"
	}
	return "+"
}

// Exon is a half-open genomic interval [Start, End).
type Exon struct {
	Start int64
	End   int64
}

// Adjacent reports whether f begins exactly where e ends, i.e. the two exons
// abut with no intervening gap and may be merged into one interval.
func (e Exon) Adjacent(f Exon) bool {
	return e.End == f.Start
}

// Len returns the interval length in bases.
func (e Exon) Len() int64 {
	return e.End - e.Start
}

// String renders the interval as "[start,end)".
func (e Exon) String() string {
	return fmt.Sprintf("[%d,%d)", e.Start, e.End)
}

// PathInfo is one enumerated isoform: its score and the ordered exon sequence
// it covers, running from smaller to larger genomic coordinate.
type PathInfo struct {
	Score float64
	Exons []Exon
}
