// Package replay runs recorded signal scenarios through the full decision
// pipeline against an in-memory store. Fixtures pin policy behavior so config
// or priority changes that alter outcomes are caught as regressions.
package replay

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sagovc/reengage/internal/collab"
	"github.com/sagovc/reengage/internal/engine"
	"github.com/sagovc/reengage/internal/logging"
	"github.com/sagovc/reengage/internal/match"
	"github.com/sagovc/reengage/internal/plan"
	"github.com/sagovc/reengage/internal/policy"
	"github.com/sagovc/reengage/internal/store"
)

// #region collaborator-stubs

// tableEmbedder serves embeddings from the fixture's canned table. Unknown
// text errors, which exercises the evaluator's fail-closed path.
type tableEmbedder struct {
	vectors map[string][]float32
}

func (e *tableEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	v, ok := e.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no canned embedding for %q", text)
	}
	return v, nil
}

// cannedGenerator returns deterministic outreach text so replay output is
// stable across runs.
type cannedGenerator struct{}

func (cannedGenerator) GenerateOutreach(_ context.Context, in collab.OutreachInput) (string, error) {
	return fmt.Sprintf("[draft for %s]", in.CompanyID), nil
}

// #endregion collaborator-stubs

// #region result-types

// BatchResult captures what one batch produced: the logged outcome and the
// plan's action kinds in persisted order.
type BatchResult struct {
	CompanyID   string
	Outcome     string
	PlanID      string
	ActionKinds []string
}

// #endregion result-types

// #region harness

// Harness wires a fixture into a fully in-memory pipeline.
type Harness struct {
	store *store.Store
	orch  *engine.Orchestrator
	f     *Fixture
}

// NewHarness builds the in-memory store and orchestrator from a fixture.
func NewHarness(f *Fixture) (*Harness, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open memory db: %w", err)
	}
	// Every pooled connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)
	st := store.NewStoreWithDB(db)
	if err := st.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	profile := f.Profile.ToProfile()
	if err := st.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}
	if f.Interaction != nil {
		if err := st.AddInteraction(f.Interaction.ToInteraction()); err != nil {
			return nil, fmt.Errorf("seed interaction: %w", err)
		}
	}

	var embedder match.Embedder
	if len(f.Embeddings) > 0 {
		embedder = &tableEmbedder{vectors: f.Embeddings}
	}
	matchCfg := match.DefaultConfig()
	if f.Config.SimilarityThreshold > 0 {
		matchCfg.SimilarityThreshold = f.Config.SimilarityThreshold
	}
	matcher := match.NewMatcher(embedder, matchCfg)

	policyCfg := policy.DefaultConfig()
	if f.Config.ConfidenceThreshold > 0 {
		policyCfg.ConfidenceThreshold = f.Config.ConfidenceThreshold
	}
	if f.Config.CooldownDays > 0 {
		policyCfg.CooldownDays = f.Config.CooldownDays
	}

	eval := policy.NewEvaluator(matcher, policyCfg)
	builder := plan.NewBuilder(plan.DefaultConfig())

	orch := engine.NewOrchestrator(st, eval, builder, cannedGenerator{}, engine.Config{
		UserID: profile.UserID,
		Policy: policyCfg,
		Plan:   plan.DefaultConfig(),
	}).WithClock(func() time.Time { return f.Now })

	return &Harness{store: st, orch: orch, f: f}, nil
}

// Close releases the in-memory database.
func (h *Harness) Close() error {
	return h.store.Close()
}

// Run processes every batch in order and returns one result per batch. The
// outcome comes from the decision log, so no_action batches are observable
// even though Process returns no plan for them.
func (h *Harness) Run(ctx context.Context) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(h.f.Batches))

	for bi, batch := range h.f.Batches {
		signals := make([]store.Signal, len(batch.Signals))
		for i := range batch.Signals {
			signals[i] = batch.Signals[i].ToSignal()
		}

		p, err := h.orch.Process(ctx, batch.CompanyID, signals)
		if err != nil {
			return nil, fmt.Errorf("batch %d (%s): %w", bi, batch.CompanyID, err)
		}

		entries, err := logging.Recent(h.store.DB(), 1)
		if err != nil {
			return nil, fmt.Errorf("batch %d (%s): read decision: %w", bi, batch.CompanyID, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("batch %d (%s): no decision recorded", bi, batch.CompanyID)
		}

		r := BatchResult{CompanyID: batch.CompanyID, Outcome: entries[0].Outcome}
		if p != nil {
			r.PlanID = p.ID
			for _, a := range p.Actions {
				r.ActionKinds = append(r.ActionKinds, string(a.Kind))
			}
		}
		results = append(results, r)
	}

	return results, nil
}

// Verify compares run results against the fixture's expectations.
func (h *Harness) Verify(results []BatchResult) error {
	if len(results) != len(h.f.Expected) {
		return fmt.Errorf("got %d results, expected %d", len(results), len(h.f.Expected))
	}
	for i, want := range h.f.Expected {
		got := results[i]
		if got.CompanyID != want.CompanyID {
			return fmt.Errorf("batch %d: company %s, expected %s", i, got.CompanyID, want.CompanyID)
		}
		if got.Outcome != want.Outcome {
			return fmt.Errorf("batch %d (%s): outcome %s, expected %s", i, got.CompanyID, got.Outcome, want.Outcome)
		}
		if len(want.ActionKinds) > 0 {
			if len(got.ActionKinds) != len(want.ActionKinds) {
				return fmt.Errorf("batch %d (%s): %d actions %v, expected %d %v",
					i, got.CompanyID, len(got.ActionKinds), got.ActionKinds, len(want.ActionKinds), want.ActionKinds)
			}
			for j := range want.ActionKinds {
				if got.ActionKinds[j] != want.ActionKinds[j] {
					return fmt.Errorf("batch %d (%s): action[%d] = %s, expected %s",
						i, got.CompanyID, j, got.ActionKinds[j], want.ActionKinds[j])
				}
			}
		}
	}
	return nil
}

// #endregion harness
