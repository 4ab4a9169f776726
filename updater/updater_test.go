package updater_test

import (
	"testing"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/provenance"
	"github.com/katalvlaran/dkg/updater"
)

func newFixture(t *testing.T) (*graph.Store, *updater.Updater) {
	t.Helper()
	store := graph.NewStore()
	if err := store.AddNode(&graph.Node{ID: "n1", HierPath: "n1", Class: graph.IoPort}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	u := updater.New(store, provenance.NewLedger())
	return store, u
}

// TestUpdater_S1Precedence reproduces §8 scenario S1.
func TestUpdater_S1Precedence(t *testing.T) {
	_, u := newFixture(t)

	if _, err := u.UpdateNodeField("n1", "clock_domain", "clk", provenance.Inferred, provenance.Rtl, updater.Origin{}); err != nil {
		t.Fatalf("write 1: %v", err)
	}
	res, err := u.UpdateNodeField("n1", "clock_domain", "sys_clk", provenance.Declared, provenance.Constraints, updater.Origin{})
	if err != nil || res.Outcome != updater.Applied {
		t.Fatalf("write 2 should apply: %v %v", res, err)
	}
	res, err = u.UpdateNodeField("n1", "clock_domain", "clk", provenance.Inferred, provenance.Rtl, updater.Origin{})
	if err != nil {
		t.Fatalf("write 3: %v", err)
	}
	if res.Outcome != updater.Rejected {
		t.Fatalf("expected write 3 rejected, got %v", res.Outcome)
	}
	if res.Current.Value.(string) != "sys_clk" {
		t.Fatalf("expected current value sys_clk, got %v", res.Current.Value)
	}
	if len(u.Ledger().History("n1", "clock_domain")) < 2 {
		t.Fatalf("expected ledger depth >= 2")
	}
}

// TestUpdater_S2UserOverride reproduces §8 scenario S2.
func TestUpdater_S2UserOverride(t *testing.T) {
	_, u := newFixture(t)
	_, err := u.UpdateNodeField("n1", "clock_domain", "clk", provenance.Inferred, provenance.Rtl, updater.Origin{})
	must(t, err)
	_, err = u.UpdateNodeField("n1", "clock_domain", "sys_clk", provenance.Declared, provenance.Constraints, updater.Origin{})
	must(t, err)
	_, err = u.UpdateNodeField("n1", "clock_domain", "my_clk", provenance.UserOverride, provenance.Constraints, updater.Origin{})
	must(t, err)

	res, err := u.UpdateNodeField("n1", "clock_domain", "sys_clk", provenance.Declared, provenance.Constraints, updater.Origin{})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if res.Outcome != updater.Rejected {
		t.Fatalf("expected UserOverride to reject subsequent Declared write, got %v", res.Outcome)
	}
	cur, _ := u.Ledger().Current("n1", "clock_domain")
	if cur.Value.(string) != "my_clk" {
		t.Fatalf("expected current value my_clk, got %v", cur.Value)
	}
}

func TestUpdater_NoSuchEntityAndTypeMismatch(t *testing.T) {
	_, u := newFixture(t)
	if _, err := u.UpdateNodeField("missing", "clock_domain", "clk", provenance.Inferred, provenance.Rtl, updater.Origin{}); err != updater.ErrNoSuchEntity {
		t.Fatalf("expected ErrNoSuchEntity, got %v", err)
	}
	if _, err := u.UpdateNodeField("n1", "slack", "not-a-float", provenance.Analyzed, provenance.Timing, updater.Origin{}); err != updater.ErrTypeMismatch {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
