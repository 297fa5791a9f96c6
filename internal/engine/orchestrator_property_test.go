package engine

import (
	"context"
	"testing"

	"github.com/sagovc/reengage/internal/store"
	"pgregory.net/rapid"
)

// drawBatch generates a valid signal batch for one company.
func drawBatch(rt *rapid.T, companyID string) []store.Signal {
	n := rapid.IntRange(1, 6).Draw(rt, "num_signals")
	kindsPool := []store.SignalKind{
		store.KindTraction, store.KindHiring, store.KindFunding,
		store.KindNeed, store.KindRisk, store.KindExecutiveChange,
	}
	titles := []string{
		"Fortune 100 design partner announced",
		"Hiring founding Head of Sales",
		"Raised a seed round",
		"Asking for SOC 2 audit prep recommendations",
		"Major customer churn reported",
	}

	batch := make([]store.Signal, n)
	for i := range batch {
		batch[i] = store.Signal{
			ID:         rapid.StringMatching(`sig-[a-z0-9]{8}`).Draw(rt, "id"),
			CompanyID:  companyID,
			Kind:       rapid.SampledFrom(kindsPool).Draw(rt, "kind"),
			Title:      rapid.SampledFrom(titles).Draw(rt, "title"),
			Confidence: float32(rapid.IntRange(0, 100).Draw(rt, "confidence")) / 100,
			Source:     store.SourceNews,
			DetectedAt: testNow.AddDate(0, 0, -rapid.IntRange(0, 29).Draw(rt, "age")),
		}
	}
	return batch
}

// TestProcessMergeIdempotenceProperty verifies that reprocessing any batch a
// second time changes nothing: same plan, same action count, still at most
// one open plan.
func TestProcessMergeIdempotenceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		st, orch := testEngine(t, &fakeGen{})
		seedProfile(t, st)
		batch := drawBatch(rt, "acme")
		ctx := context.Background()

		first, err := orch.Process(ctx, "acme", batch)
		if err != nil {
			rt.Fatalf("first Process: %v", err)
		}
		second, err := orch.Process(ctx, "acme", batch)
		if err != nil {
			rt.Fatalf("second Process: %v", err)
		}

		if first == nil {
			if second != nil && second.Status == store.PlanOpen {
				rt.Fatalf("a gated batch opened a plan on replay: %+v", second)
			}
		} else {
			// Open plans extend in place; closed review artifacts are reused.
			// Either way the replay returns the same plan.
			if second == nil || second.ID != first.ID {
				rt.Fatalf("replay must reuse plan %s, got %+v", first.ID, second)
			}
			if len(second.Actions) != len(first.Actions) {
				rt.Fatalf("replay added actions: %d -> %d", len(first.Actions), len(second.Actions))
			}
		}

		var plans int
		if err := st.DB().QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&plans); err != nil {
			rt.Fatalf("count plans: %v", err)
		}
		if plans > 2 {
			rt.Fatalf("replay minted extra plans: %d (at most one outreach plan and one review artifact)", plans)
		}

		if _, err := st.GetOpenPlan("acme"); err != nil {
			rt.Fatalf("open-plan invariant broken: %v", err)
		}
	})
}
