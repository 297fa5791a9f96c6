package replay

import (
	"context"
	"path/filepath"
	"testing"
)

// #region fixture-tests

// runFixture loads a scenario file, replays it, and verifies expectations.
// These are the primary regression tests: if gate thresholds, priority
// weights, or planning rules change outcomes, a fixture catches the drift.
func runFixture(t *testing.T, name string) {
	t.Helper()

	f, err := LoadFixture(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	h, err := NewHarness(f)
	if err != nil {
		t.Fatalf("NewHarness: %v", err)
	}
	defer h.Close()

	results, err := h.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := h.Verify(results); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestFixture_QualifiedReengagement(t *testing.T) {
	runFixture(t, "qualified_reengagement.json")
}

func TestFixture_RiskReview(t *testing.T) {
	runFixture(t, "risk_review.json")
}

func TestFixture_CooldownNoAction(t *testing.T) {
	runFixture(t, "cooldown_no_action.json")
}

func TestFixture_ExtendOpenPlan(t *testing.T) {
	runFixture(t, "extend_open_plan.json")
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join("testdata", "does_not_exist.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

// #endregion fixture-tests
