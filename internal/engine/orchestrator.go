// Package engine coordinates one company's signal batch end to end: load
// context, evaluate policy, build and merge the action plan, and commit it
// atomically. Processing for a given company is serialized; different
// companies may be processed concurrently.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sagovc/reengage/internal/collab"
	"github.com/sagovc/reengage/internal/logging"
	"github.com/sagovc/reengage/internal/plan"
	"github.com/sagovc/reengage/internal/policy"
	"github.com/sagovc/reengage/internal/store"
)

// #region interfaces

// Generator abstracts the outreach-generation collaborator. A nil Generator
// (or a failing call) leaves the action payload marked pending; it never
// aborts the batch.
type Generator interface {
	GenerateOutreach(ctx context.Context, in collab.OutreachInput) (string, error)
}

// Clock supplies "now" so processing stays reproducible in tests.
type Clock func() time.Time

// #endregion interfaces

// #region config

// Config bundles the orchestrator's dependencies on policy and planning
// configuration plus the acting user.
type Config struct {
	UserID string
	Policy policy.Config
	Plan   plan.Config
}

// #endregion config

// #region orchestrator

// Orchestrator owns the ReengagementPlan lifecycle for every company.
type Orchestrator struct {
	store   *store.Store
	eval    *policy.Evaluator
	builder *plan.Builder
	gen     Generator
	locks   *companyLocks
	config  Config
	now     Clock
}

// NewOrchestrator creates a fully wired orchestrator. gen may be nil.
func NewOrchestrator(st *store.Store, eval *policy.Evaluator, builder *plan.Builder, gen Generator, config Config) *Orchestrator {
	return &Orchestrator{
		store:   st,
		eval:    eval,
		builder: builder,
		gen:     gen,
		locks:   newCompanyLocks(),
		config:  config,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock. Test hook.
func (o *Orchestrator) WithClock(clock Clock) *Orchestrator {
	o.now = clock
	return o
}

// #endregion orchestrator

// #region process

// Process evaluates one company's new signal batch and returns the plan it
// produced or extended, or nil on no_action. Signals are validated at this
// boundary; malformed input is rejected, never coerced.
func (o *Orchestrator) Process(ctx context.Context, companyID string, signals []store.Signal) (*store.ReengagementPlan, error) {
	for _, s := range signals {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("reject batch: %w", err)
		}
		if s.CompanyID != companyID {
			return nil, fmt.Errorf("reject batch: signal %s belongs to company %s, not %s", s.ID, s.CompanyID, companyID)
		}
	}

	release := o.locks.acquire(companyID)
	defer release()

	now := o.now()

	cc, profile, err := o.loadContext(companyID, signals)
	if err != nil {
		return nil, err
	}

	ev := o.eval.Evaluate(ctx, cc, now)
	log.Printf("[ENGINE] %s: outcome=%s flagged=%d qualified=%d (%s)",
		companyID, ev.Outcome, len(ev.Flagged), len(ev.Qualified), ev.Reason)

	// Risk-classified signals bypass outreach and route to review. The review
	// artifact commits after the outreach plan's own commit so a failed plan
	// write leaves no partial state behind.
	switch ev.Outcome {
	case policy.OutcomeNoAction:
		if err := o.store.SaveSignals(signals); err != nil {
			return nil, err
		}
		o.logDecision(companyID, ev, signals, "")
		return nil, nil

	case policy.OutcomeFlagReview:
		// Non-flagged signals in the batch still land in the audit trail.
		if err := o.store.SaveSignals(signals); err != nil {
			return nil, err
		}
		reviewPlan, err := o.ensureReviewArtifact(companyID, ev.Flagged, now)
		if err != nil {
			return nil, err
		}
		o.logDecision(companyID, ev, signals, reviewPlan.ID)
		return reviewPlan, nil

	case policy.OutcomeReengage:
		p, err := o.openPlan(ctx, cc, ev, profile, signals, now)
		if err != nil {
			return nil, err
		}
		if len(ev.Flagged) > 0 {
			if _, err := o.ensureReviewArtifact(companyID, ev.Flagged, now); err != nil {
				return nil, err
			}
		}
		o.logDecision(companyID, ev, signals, p.ID)
		return p, nil

	case policy.OutcomeExtend:
		p, err := o.extendPlan(ctx, cc, ev, profile, signals, now)
		if err != nil {
			return nil, err
		}
		if len(ev.Flagged) > 0 {
			if _, err := o.ensureReviewArtifact(companyID, ev.Flagged, now); err != nil {
				return nil, err
			}
		}
		o.logDecision(companyID, ev, signals, p.ID)
		return p, nil

	default:
		return nil, fmt.Errorf("unknown outcome %q", ev.Outcome)
	}
}

// #endregion process

// #region load-context

// loadContext gathers everything the evaluator needs. A missing profile is
// not fatal: the company is treated as first contact for planning purposes.
func (o *Orchestrator) loadContext(companyID string, signals []store.Signal) (policy.CompanyContext, store.UserProfile, error) {
	profile, err := o.store.GetProfile(o.config.UserID)
	if err != nil {
		if !isNotFound(err) {
			return policy.CompanyContext{}, store.UserProfile{}, err
		}
		profile = store.UserProfile{UserID: o.config.UserID}
	}

	interaction, err := o.store.LatestInteraction(companyID)
	if err != nil {
		return policy.CompanyContext{}, store.UserProfile{}, err
	}
	openPlan, err := o.store.GetOpenPlan(companyID)
	if err != nil {
		// Includes ErrInvariant: surfaced loudly, never repaired here.
		return policy.CompanyContext{}, store.UserProfile{}, err
	}
	closedPlan, err := o.store.LatestClosedPlan(companyID)
	if err != nil {
		return policy.CompanyContext{}, store.UserProfile{}, err
	}

	return policy.CompanyContext{
		CompanyID:       companyID,
		Signals:         signals,
		LastInteraction: interaction,
		OpenPlan:        openPlan,
		LastClosedPlan:  closedPlan,
	}, profile, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// #endregion load-context

// #region open-plan

func (o *Orchestrator) openPlan(
	ctx context.Context,
	cc policy.CompanyContext,
	ev policy.Evaluation,
	profile store.UserProfile,
	signals []store.Signal,
	now time.Time,
) (*store.ReengagementPlan, error) {
	p := store.ReengagementPlan{
		ID:               uuid.New().String(),
		CompanyID:        cc.CompanyID,
		Status:           store.PlanOpen,
		OpenedAt:         now,
		TriggeringSignal: signalIDs(ev.Qualified),
	}
	p.Actions = o.builder.BuildActions(p.ID, ev.Outcome, ev.Qualified, profile, now)
	o.fillPayloads(ctx, &p, ev.Qualified, profile, cc.LastInteraction)

	if err := o.store.OpenPlan(p, signals); err != nil {
		return nil, err
	}
	log.Printf("[ENGINE] %s: opened plan %s with %d actions", cc.CompanyID, p.ID, len(p.Actions))
	return &p, nil
}

// #endregion open-plan

// #region extend-plan

// extendPlan folds the batch into the existing open plan. The merge is
// idempotent: actions already present by (kind, payload key) are skipped, so
// reprocessing the same signals is a no-op.
func (o *Orchestrator) extendPlan(
	ctx context.Context,
	cc policy.CompanyContext,
	ev policy.Evaluation,
	profile store.UserProfile,
	signals []store.Signal,
	now time.Time,
) (*store.ReengagementPlan, error) {
	existing := cc.OpenPlan

	seen := make(map[string]bool, len(existing.Actions))
	for _, a := range existing.Actions {
		seen[dedupeKey(a)] = true
	}

	candidate := store.ReengagementPlan{ID: existing.ID, CompanyID: cc.CompanyID}
	candidate.Actions = o.builder.BuildActions(existing.ID, ev.Outcome, ev.Qualified, profile, now)

	var fresh []store.PlannedAction
	for _, a := range candidate.Actions {
		if !seen[dedupeKey(a)] {
			fresh = append(fresh, a)
			seen[dedupeKey(a)] = true
		}
	}

	combined := unionIDs(existing.TriggeringSignal, signalIDs(ev.Qualified))

	if len(fresh) > 0 {
		candidate.Actions = fresh
		o.fillPayloads(ctx, &candidate, ev.Qualified, profile, cc.LastInteraction)
		fresh = candidate.Actions
	}

	if err := o.store.ExtendPlan(existing.ID, combined, fresh, signals); err != nil {
		return nil, err
	}
	log.Printf("[ENGINE] %s: extended plan %s with %d new actions", cc.CompanyID, existing.ID, len(fresh))

	return o.store.GetPlan(existing.ID)
}

func dedupeKey(a store.PlannedAction) string {
	return string(a.Kind) + "|" + a.PayloadKey
}

// #endregion extend-plan

// #region review-artifact

// ensureReviewArtifact persists the closed-immediately internal review plan
// for flagged signals. Its actions are auto and recorded as executed.
// Reprocessing the same flagged set returns the existing artifact instead of
// minting a duplicate, keeping the whole batch replay a no-op.
func (o *Orchestrator) ensureReviewArtifact(companyID string, flagged []store.Signal, now time.Time) (*store.ReengagementPlan, error) {
	ids := signalIDs(flagged)
	if existing, err := o.store.FindReviewArtifact(companyID, ids); err != nil {
		return nil, err
	} else if existing != nil {
		log.Printf("[ENGINE] %s: review artifact %s already covers flagged signals", companyID, existing.ID)
		return existing, nil
	}

	p := store.ReengagementPlan{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Status:           store.PlanClosed,
		OpenedAt:         now,
		ClosedAt:         now,
		TriggeringSignal: ids,
	}
	p.Actions = o.builder.BuildReviewActions(p.ID, flagged, now)
	for i := range p.Actions {
		p.Actions[i].Status = store.StatusExecuted
		p.Actions[i].ExecutedAt = now
	}

	if err := o.store.OpenPlan(p, flagged); err != nil {
		return nil, err
	}
	log.Printf("[ENGINE] %s: flagged %d signals for review (artifact %s)", companyID, len(flagged), p.ID)
	return &p, nil
}

// #endregion review-artifact

// #region payloads

// fillPayloads requests generated text for actions that need it. A failed
// generation marks that action pending for the execution collaborator to
// retry; it never blocks the rest of the batch.
func (o *Orchestrator) fillPayloads(
	ctx context.Context,
	p *store.ReengagementPlan,
	signals []store.Signal,
	profile store.UserProfile,
	interaction *store.Interaction,
) {
	for i := range p.Actions {
		a := &p.Actions[i]
		needsText := a.Kind == store.ActionDraftOutreach ||
			(a.Kind == store.ActionShareResource && a.Payload == "")
		if !needsText {
			continue
		}

		if o.gen == nil {
			a.Payload = plan.GenerationPending
			continue
		}

		in := collab.OutreachInput{
			CompanyID:      p.CompanyID,
			UserName:       profile.Name,
			Tone:           profile.Tone,
			ThesisKeywords: profile.ThesisKeywords,
			Availability:   profile.Availability,
			SignalTitles:   signalTitles(signals),
		}
		if interaction != nil {
			in.InteractionNotes = interaction.Notes
		}

		text, err := o.gen.GenerateOutreach(ctx, in)
		if err != nil {
			log.Printf("[ENGINE] %s: generation failed for %s action: %v", p.CompanyID, a.Kind, err)
			a.Payload = plan.GenerationPending
			continue
		}
		a.Payload = text
	}
}

// #endregion payloads

// #region decision-log

func (o *Orchestrator) logDecision(companyID string, ev policy.Evaluation, signals []store.Signal, planID string) {
	batch, _ := json.Marshal(signals)
	err := logging.LogDecision(o.store.DB(), logging.DecisionEntry{
		CompanyID:   companyID,
		Outcome:     string(ev.Outcome),
		Reason:      ev.Reason,
		SignalsJSON: string(batch),
		PlanID:      planID,
		CreatedAt:   o.now(),
	})
	if err != nil {
		log.Printf("[ENGINE] %s: failed to record decision: %v", companyID, err)
	}
}

// #endregion decision-log

// #region helpers

func signalIDs(signals []store.Signal) []string {
	ids := make([]string, len(signals))
	for i, s := range signals {
		ids[i] = s.ID
	}
	return ids
}

func signalTitles(signals []store.Signal) []string {
	titles := make([]string, len(signals))
	for i, s := range signals {
		titles[i] = s.Title
	}
	return titles
}

func unionIDs(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, id := range append(append([]string{}, a...), b...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// #endregion helpers
