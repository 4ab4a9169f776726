package provenance_test

import (
	"testing"

	"github.com/katalvlaran/dkg/provenance"
)

func TestLedger_AppendAndHistoryBound(t *testing.T) {
	l := provenance.NewLedger(provenance.WithMaxDepth(2))

	l.Append("n1", "clock_domain", provenance.Record{Value: "a", Source: provenance.Inferred, Stage: provenance.Rtl, Seq: l.NextSeq()})
	l.Append("n1", "clock_domain", provenance.Record{Value: "b", Source: provenance.Declared, Stage: provenance.Constraints, Seq: l.NextSeq()})
	l.Append("n1", "clock_domain", provenance.Record{Value: "c", Source: provenance.UserOverride, Stage: provenance.Constraints, Seq: l.NextSeq()})

	cur, ok := l.Current("n1", "clock_domain")
	if !ok || cur.Value != "c" {
		t.Fatalf("expected current value 'c', got %v ok=%v", cur.Value, ok)
	}

	hist := l.History("n1", "clock_domain")
	if len(hist) != 2 {
		t.Fatalf("expected bounded history of length 2, got %d", len(hist))
	}
	if hist[0].Value != "b" || hist[1].Value != "c" {
		t.Fatalf("unexpected history contents: %+v", hist)
	}
}

func TestRank_Ordering(t *testing.T) {
	low := provenance.RankOf(provenance.Inferred, provenance.Board)
	high := provenance.RankOf(provenance.Declared, provenance.Rtl)
	if !low.Less(high) {
		t.Fatalf("expected source rank to dominate stage rank")
	}

	a := provenance.RankOf(provenance.Declared, provenance.Synthesis)
	b := provenance.RankOf(provenance.Declared, provenance.Board)
	if !a.Less(b) {
		t.Fatalf("expected stage rank to break same-source ties")
	}
}
