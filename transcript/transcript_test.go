package transcript_test

import (
	"testing"

	"github.com/Xiuying/assemblyline/transcript"
)

func TestExon_Adjacent(t *testing.T) {
	a := transcript.Exon{Start: 100, End: 120}
	b := transcript.Exon{Start: 120, End: 140}
	if !a.Adjacent(b) {
		t.Errorf("%v should be adjacent to %v", a, b)
	}
	if b.Adjacent(a) {
		t.Errorf("adjacency is directional; %v must not be adjacent to %v", b, a)
	}
	gap := transcript.Exon{Start: 130, End: 140}
	if a.Adjacent(gap) {
		t.Errorf("%v and %v are separated by a gap", a, gap)
	}
}

func TestExon_LenAndString(t *testing.T) {
	e := transcript.Exon{Start: 100, End: 160}
	if got, want := e.Len(), int64(60); got != want {
		t.Errorf("Len() = %d; want %d", got, want)
	}
	if got, want := e.String(), "[100,160)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestStrand_String(t *testing.T) {
	if got := transcript.StrandPos.String(); got != "+" {
		t.Errorf("StrandPos.String() = %q; want %q", got, "+")
	}
	if got := transcript.StrandNeg.String(); got != "-" {
		t.Errorf("StrandNeg.String() = %q; want %q", got, "-")
	}
}
