package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sagovc/reengage/internal/collab"
	"github.com/sagovc/reengage/internal/logging"
	"github.com/sagovc/reengage/internal/match"
	"github.com/sagovc/reengage/internal/plan"
	"github.com/sagovc/reengage/internal/policy"
	"github.com/sagovc/reengage/internal/store"
	_ "modernc.org/sqlite"
)

var testNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

// #region fakes

type fakeGen struct {
	err   error
	calls int
}

func (g *fakeGen) GenerateOutreach(_ context.Context, in collab.OutreachInput) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return "draft for " + in.CompanyID, nil
}

// hookGen runs a callback before answering, to interleave store writes with
// an in-flight Process call.
type hookGen struct {
	hook func()
}

func (g *hookGen) GenerateOutreach(_ context.Context, in collab.OutreachInput) (string, error) {
	if g.hook != nil {
		g.hook()
	}
	return "draft for " + in.CompanyID, nil
}

// #endregion fakes

// #region helpers

func testEngine(t *testing.T, gen Generator) (*store.Store, *Orchestrator) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// Every pooled connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)
	st := store.NewStoreWithDB(db)
	if err := st.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	policyCfg := policy.DefaultConfig()
	planCfg := plan.DefaultConfig()
	eval := policy.NewEvaluator(match.NewMatcher(nil, match.DefaultConfig()), policyCfg)
	orch := NewOrchestrator(st, eval, plan.NewBuilder(planCfg), gen, Config{
		UserID: "maya",
		Policy: policyCfg,
		Plan:   planCfg,
	}).WithClock(func() time.Time { return testNow })
	return st, orch
}

func seedProfile(t *testing.T, st *store.Store) {
	t.Helper()
	err := st.SaveProfile(store.UserProfile{
		UserID:         "maya",
		Name:           "Maya Chen",
		ThesisKeywords: []string{"vertical ai"},
		Tone:           "warm, direct",
		Availability:   []string{"Tue mornings"},
		ResourceLibrary: []store.Resource{
			{Category: "soc2", Label: "SOC 2 checklist", Link: "https://example.com/soc2"},
		},
	})
	if err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
}

func sig(id, companyID string, kind store.SignalKind, title string, confidence float32) store.Signal {
	return store.Signal{
		ID:         id,
		CompanyID:  companyID,
		Kind:       kind,
		Title:      title,
		Confidence: confidence,
		Source:     store.SourceNews,
		DetectedAt: testNow.AddDate(0, 0, -1),
	}
}

func qualifyingBatch(companyID string) []store.Signal {
	return []store.Signal{
		sig(companyID+"-s1", companyID, store.KindTraction, "Fortune 100 design partner announced", 0.92),
		sig(companyID+"-s2", companyID, store.KindNeed, "Asking for SOC 2 audit prep recommendations", 0.75),
		sig(companyID+"-s3", companyID, store.KindHiring, "Hiring founding Head of Sales", 0.8),
	}
}

func lastDecision(t *testing.T, st *store.Store) logging.DecisionEntry {
	t.Helper()
	entries, err := logging.Recent(st.DB(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no decision logged")
	}
	return entries[0]
}

// #endregion helpers

// #region process-tests

func TestProcessOpensOrderedPlan(t *testing.T) {
	gen := &fakeGen{}
	st, orch := testEngine(t, gen)
	seedProfile(t, st)

	p, err := orch.Process(context.Background(), "acme", qualifyingBatch("acme"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p == nil {
		t.Fatal("expected a plan")
	}

	want := []store.ActionKind{
		store.ActionDraftOutreach,
		store.ActionShareResource,
		store.ActionOfferIntro,
		store.ActionLogCRM,
	}
	if len(p.Actions) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(p.Actions))
	}
	for i, k := range want {
		if p.Actions[i].Kind != k {
			t.Fatalf("action %d: got %s, want %s", i, p.Actions[i].Kind, k)
		}
	}

	// Approval gates: outreach and intro are human-gated, the static resource
	// share and CRM record are automatic.
	gates := []bool{true, false, true, false}
	for i, g := range gates {
		if p.Actions[i].RequiresApproval != g {
			t.Fatalf("action %d (%s): RequiresApproval = %v, want %v",
				i, p.Actions[i].Kind, p.Actions[i].RequiresApproval, g)
		}
	}

	if p.Actions[0].Payload != "draft for acme" {
		t.Fatalf("outreach payload not generated: %q", p.Actions[0].Payload)
	}
	if p.Actions[1].Payload != "https://example.com/soc2" {
		t.Fatalf("static resource payload must be the link: %q", p.Actions[1].Payload)
	}

	// The decision and the plan both landed.
	d := lastDecision(t, st)
	if d.Outcome != string(policy.OutcomeReengage) || d.PlanID != p.ID {
		t.Fatalf("decision log mismatch: %+v", d)
	}
	stored, err := st.GetOpenPlan("acme")
	if err != nil || stored == nil || stored.ID != p.ID {
		t.Fatalf("plan not persisted open: %+v, %v", stored, err)
	}
}

func TestProcessReprocessingBatchIsIdempotent(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)
	batch := qualifyingBatch("acme")

	first, err := orch.Process(context.Background(), "acme", batch)
	if err != nil {
		t.Fatalf("first Process: %v", err)
	}
	second, err := orch.Process(context.Background(), "acme", batch)
	if err != nil {
		t.Fatalf("second Process: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("reprocessing must extend plan %s, not open %s", first.ID, second.ID)
	}
	if len(second.Actions) != len(first.Actions) {
		t.Fatalf("reprocessing added actions: %d -> %d", len(first.Actions), len(second.Actions))
	}
	d := lastDecision(t, st)
	if d.Outcome != string(policy.OutcomeExtend) {
		t.Fatalf("expected extend decision, got %s", d.Outcome)
	}
}

func TestProcessExtendAppendsOnlyFreshActions(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)

	first, err := orch.Process(context.Background(), "acme", []store.Signal{
		sig("s1", "acme", store.KindTraction, "Fortune 100 design partner announced", 0.92),
	})
	if err != nil {
		t.Fatalf("first Process: %v", err)
	}
	if len(first.Actions) != 2 { // draft_outreach + log_crm
		t.Fatalf("expected 2 initial actions, got %v", first.Actions)
	}

	second, err := orch.Process(context.Background(), "acme", []store.Signal{
		sig("s2", "acme", store.KindNeed, "Asking for SOC 2 audit prep recommendations", 0.8),
	})
	if err != nil {
		t.Fatalf("second Process: %v", err)
	}
	if len(second.Actions) != 3 {
		t.Fatalf("expected 3 actions after extend, got %d", len(second.Actions))
	}
	if second.Actions[2].Kind != store.ActionShareResource {
		t.Fatalf("fresh action must append, got %s", second.Actions[2].Kind)
	}

	// Triggering signals accumulate without duplicates.
	if len(second.TriggeringSignal) != 2 {
		t.Fatalf("expected 2 triggering signals, got %v", second.TriggeringSignal)
	}
}

func TestProcessRiskOnlyCreatesReviewArtifact(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)

	p, err := orch.Process(context.Background(), "vectorly", []store.Signal{
		sig("r1", "vectorly", store.KindRisk, "Major customer churn reported", 0.9),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p == nil || p.Status != store.PlanClosed {
		t.Fatalf("review artifact must be closed immediately, got %+v", p)
	}

	want := []store.ActionKind{store.ActionInternalNote, store.ActionFlagReview}
	if len(p.Actions) != 2 || p.Actions[0].Kind != want[0] || p.Actions[1].Kind != want[1] {
		t.Fatalf("unexpected review actions: %+v", p.Actions)
	}
	for _, a := range p.Actions {
		if a.Status != store.StatusExecuted || a.ExecutedAt.IsZero() {
			t.Fatalf("review actions are recorded as executed: %+v", a)
		}
	}

	// A closed artifact must not block a later plan.
	open, err := st.GetOpenPlan("vectorly")
	if err != nil || open != nil {
		t.Fatalf("review artifact must not occupy the open slot: %+v, %v", open, err)
	}
	if d := lastDecision(t, st); d.Outcome != string(policy.OutcomeFlagReview) {
		t.Fatalf("expected flag_for_review decision, got %s", d.Outcome)
	}
}

func TestProcessRiskAlongsidePositiveBatch(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)

	batch := []store.Signal{
		sig("s1", "acme", store.KindTraction, "Fortune 100 design partner announced", 0.92),
		sig("r1", "acme", store.KindRisk, "Lawsuit rumors", 0.85),
	}
	p, err := orch.Process(context.Background(), "acme", batch)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p == nil || p.Status != store.PlanOpen {
		t.Fatalf("expected an open outreach plan, got %+v", p)
	}

	// The outreach plan carries no risk-derived actions, but the review
	// artifact exists alongside it.
	plans, err := st.ListPlans(10)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected outreach plan + review artifact, got %d plans", len(plans))
	}
	var review *store.ReengagementPlan
	for i := range plans {
		if plans[i].Status == store.PlanClosed {
			review = &plans[i]
		}
	}
	if review == nil || len(review.Actions) != 2 {
		t.Fatalf("missing review artifact: %+v", plans)
	}
}

func TestProcessRiskBatchReplayReusesArtifact(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)
	batch := []store.Signal{
		sig("r1", "vectorly", store.KindRisk, "Major customer churn reported", 0.9),
		sig("r2", "vectorly", store.KindExecutiveChange, "CTO departure announced", 0.85),
	}

	first, err := orch.Process(context.Background(), "vectorly", batch)
	if err != nil {
		t.Fatalf("first Process: %v", err)
	}
	second, err := orch.Process(context.Background(), "vectorly", batch)
	if err != nil {
		t.Fatalf("second Process: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("replay minted a new review artifact: %s then %s", first.ID, second.ID)
	}
	plans, err := st.ListPlans(10)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected a single review artifact, got %d plans", len(plans))
	}
	if len(plans[0].Actions) != 2 {
		t.Fatalf("artifact actions changed on replay: %+v", plans[0].Actions)
	}
}

func TestProcessFailedPlanCommitWritesNoReviewArtifact(t *testing.T) {
	// The generator runs between action building and the plan commit; opening
	// a competing plan there forces the commit to conflict.
	gen := &hookGen{}
	st, orch := testEngine(t, gen)
	seedProfile(t, st)
	gen.hook = func() {
		err := st.OpenPlan(store.ReengagementPlan{
			ID: "intruder", CompanyID: "acme",
			Status: store.PlanOpen, OpenedAt: testNow,
		}, nil)
		if err != nil {
			t.Errorf("intruder OpenPlan: %v", err)
		}
	}

	batch := []store.Signal{
		sig("s1", "acme", store.KindTraction, "Fortune 100 design partner announced", 0.92),
		sig("r1", "acme", store.KindRisk, "Lawsuit rumors", 0.85),
	}
	if _, err := orch.Process(context.Background(), "acme", batch); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict from the plan commit, got %v", err)
	}

	// The failed call must not leave a review artifact behind.
	artifact, err := st.FindReviewArtifact("acme", []string{"r1"})
	if err != nil {
		t.Fatalf("FindReviewArtifact: %v", err)
	}
	if artifact != nil {
		t.Fatalf("review artifact persisted despite failed commit: %+v", artifact)
	}
	plans, err := st.ListPlans(10)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "intruder" {
		t.Fatalf("expected only the competing plan, got %+v", plans)
	}
}

func TestProcessCooldownLogsNoAction(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)
	if err := st.AddInteraction(store.Interaction{
		ID: "int-1", CompanyID: "acme",
		OccurredAt: testNow.AddDate(0, 0, -3),
		Outcome:    "pass_for_now",
	}); err != nil {
		t.Fatalf("AddInteraction: %v", err)
	}

	p, err := orch.Process(context.Background(), "acme", []store.Signal{
		sig("s1", "acme", store.KindTraction, "milestone", 0.9),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p != nil {
		t.Fatalf("cooldown must produce no plan, got %+v", p)
	}

	// The gated batch is still persisted and the decision is auditable.
	d := lastDecision(t, st)
	if d.Outcome != string(policy.OutcomeNoAction) || d.CompanyID != "acme" {
		t.Fatalf("expected logged no_action, got %+v", d)
	}
	var count int
	if err := st.DB().QueryRow(`SELECT COUNT(*) FROM signals WHERE id = 's1'`).Scan(&count); err != nil || count != 1 {
		t.Fatalf("gated signals must still be saved: count=%d err=%v", count, err)
	}
}

func TestProcessMissingProfileIsFirstContact(t *testing.T) {
	_, orch := testEngine(t, &fakeGen{})

	p, err := orch.Process(context.Background(), "acme", []store.Signal{
		sig("s1", "acme", store.KindTraction, "milestone", 0.9),
	})
	if err != nil {
		t.Fatalf("Process without profile: %v", err)
	}
	if p == nil {
		t.Fatal("expected a plan for first contact")
	}
	// Without auto-send opt-in, outreach defaults to approval-gated.
	if !p.Actions[0].RequiresApproval {
		t.Fatal("zero-value profile must gate outreach")
	}
}

// #endregion process-tests

// #region validation-tests

func TestProcessRejectsMalformedBatch(t *testing.T) {
	_, orch := testEngine(t, &fakeGen{})

	bad := sig("s1", "acme", store.KindTraction, "milestone", 1.2)
	if _, err := orch.Process(context.Background(), "acme", []store.Signal{bad}); err == nil {
		t.Fatal("expected rejection of out-of-range confidence")
	}

	wrongCompany := sig("s2", "globex", store.KindTraction, "milestone", 0.9)
	if _, err := orch.Process(context.Background(), "acme", []store.Signal{wrongCompany}); err == nil {
		t.Fatal("expected rejection of cross-company signal")
	}
}

// #endregion validation-tests

// #region generation-tests

func TestProcessGenerationFailureMarksPending(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{err: errors.New("collaborator down")})
	seedProfile(t, st)

	p, err := orch.Process(context.Background(), "acme", []store.Signal{
		sig("s1", "acme", store.KindTraction, "milestone", 0.9),
	})
	if err != nil {
		t.Fatalf("generation failure must not abort the batch: %v", err)
	}
	if p.Actions[0].Payload != plan.GenerationPending {
		t.Fatalf("expected pending marker, got %q", p.Actions[0].Payload)
	}
}

func TestProcessNilGeneratorMarksPending(t *testing.T) {
	st, orch := testEngine(t, nil)
	seedProfile(t, st)

	p, err := orch.Process(context.Background(), "acme", []store.Signal{
		sig("s1", "acme", store.KindTraction, "milestone", 0.9),
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if p.Actions[0].Payload != plan.GenerationPending {
		t.Fatalf("expected pending marker with no generator, got %q", p.Actions[0].Payload)
	}
}

// #endregion generation-tests

// #region concurrency-tests

func TestProcessDistinctCompaniesConcurrently(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)

	const n = 8
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		companyID := fmt.Sprintf("co-%d", i)
		go func() {
			_, err := orch.Process(context.Background(), companyID, qualifyingBatch(companyID))
			errCh <- err
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("concurrent Process: %v", err)
		}
	}

	plans, err := st.ListPlans(2 * n)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(plans) != n {
		t.Fatalf("expected %d plans, got %d", n, len(plans))
	}
}

func TestProcessSameCompanyConcurrentlyKeepsOnePlan(t *testing.T) {
	st, orch := testEngine(t, &fakeGen{})
	seedProfile(t, st)

	const n = 6
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		batch := []store.Signal{
			sig(fmt.Sprintf("s-%d", i), "acme", store.KindTraction, "milestone", 0.9),
		}
		go func() {
			_, err := orch.Process(context.Background(), "acme", batch)
			errCh <- err
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("concurrent Process: %v", err)
		}
	}

	p, err := st.GetOpenPlan("acme")
	if err != nil {
		t.Fatalf("GetOpenPlan: %v", err)
	}
	if p == nil {
		t.Fatal("expected one open plan")
	}
}

// #endregion concurrency-tests
