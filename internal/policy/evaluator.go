// Package policy implements the re-engagement decision function: given a
// company's new signals, its interaction history, and configuration, decide
// whether to open a plan, extend one, flag for review, or do nothing.
package policy

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sagovc/reengage/internal/store"
)

// #region type-priority

// typePriority weights signal kinds for prioritization within a batch.
var typePriority = map[store.SignalKind]float32{
	store.KindTraction:        1.0,
	store.KindFunding:         0.9,
	store.KindNeed:            0.85,
	store.KindHiring:          0.7,
	store.KindExecutiveChange: 0.6,
	store.KindRisk:            0.3,
}

// #endregion type-priority

// #region evaluator

// Evaluator applies the decision gates. Pure and reproducible for a fixed
// context, config, and clock value; the trigger matcher is its only
// collaborator and fails closed.
type Evaluator struct {
	matcher TriggerMatcher
	config  Config
}

// NewEvaluator creates an Evaluator. matcher may be nil, in which case any
// configured trigger blocks (fail-closed).
func NewEvaluator(matcher TriggerMatcher, config Config) *Evaluator {
	return &Evaluator{matcher: matcher, config: config}
}

// #endregion evaluator

// #region evaluate

// Evaluate runs the gates in order: risk partition, confidence, trigger
// match, cooldown. Signals are evaluated as one batch so trigger matching
// sees full context.
func (e *Evaluator) Evaluate(ctx context.Context, cc CompanyContext, now time.Time) Evaluation {
	flagged, candidates := partitionRisk(cc.Signals)

	// Confidence gate
	var qualified []store.Signal
	for _, s := range candidates {
		if s.Confidence >= e.config.ConfidenceThreshold {
			qualified = append(qualified, s)
		}
	}
	if len(qualified) == 0 {
		return e.terminal(flagged, nil, fmt.Sprintf(
			"no signals above confidence threshold %.2f", e.config.ConfidenceThreshold))
	}

	// Trigger match: skipped (treated as passed) when no prior interaction
	// or no agreed trigger exists.
	if cc.LastInteraction != nil && cc.LastInteraction.FollowupTrigger != "" {
		if !e.anyMatches(ctx, cc.LastInteraction.FollowupTrigger, qualified) {
			return e.terminal(flagged, nil, fmt.Sprintf(
				"no signal matches follow-up trigger %q", cc.LastInteraction.FollowupTrigger))
		}
	}

	qualified = prioritize(qualified, now)

	// Cooldown gates opening a new plan only; an open plan absorbs the batch
	// regardless of elapsed time.
	if cc.OpenPlan != nil {
		return Evaluation{
			Outcome:   OutcomeExtend,
			Reason:    fmt.Sprintf("%d qualifying signals folded into open plan %s", len(qualified), cc.OpenPlan.ID),
			Flagged:   flagged,
			Qualified: qualified,
		}
	}
	if days, anchored := daysSinceAnchor(cc, now); anchored && days < e.config.CooldownDays {
		return e.terminal(flagged, qualified, fmt.Sprintf(
			"within %d-day cooldown (%d days elapsed)", e.config.CooldownDays, days))
	}

	return Evaluation{
		Outcome:   OutcomeReengage,
		Reason:    fmt.Sprintf("%d qualifying signals, all gates passed", len(qualified)),
		Flagged:   flagged,
		Qualified: qualified,
	}
}

// terminal builds the negative-path evaluation: flag_for_review when risk
// signals are present, no_action otherwise. Gated-out signals are still
// persisted upstream for audit.
func (e *Evaluator) terminal(flagged, qualified []store.Signal, reason string) Evaluation {
	outcome := OutcomeNoAction
	if len(flagged) > 0 {
		outcome = OutcomeFlagReview
		reason = fmt.Sprintf("%d signals flagged for review; %s", len(flagged), reason)
	}
	return Evaluation{Outcome: outcome, Reason: reason, Flagged: flagged}
}

// #endregion evaluate

// #region gates

// partitionRisk splits the batch into review-bound and outreach-candidate
// signals. Risk signals never suppress the rest of the batch.
func partitionRisk(signals []store.Signal) (flagged, candidates []store.Signal) {
	for _, s := range signals {
		if s.Kind.IsRisk() {
			flagged = append(flagged, s)
		} else {
			candidates = append(candidates, s)
		}
	}
	return flagged, candidates
}

func (e *Evaluator) anyMatches(ctx context.Context, trigger string, signals []store.Signal) bool {
	if e.matcher == nil {
		return false
	}
	for _, s := range signals {
		if e.matcher.Matches(ctx, trigger, s.Text()).Matched {
			return true
		}
	}
	return false
}

// daysSinceAnchor computes elapsed days since the later of the last
// interaction and the most recently closed plan's opening. anchored is
// false for first contact (no history to cool down from).
func daysSinceAnchor(cc CompanyContext, now time.Time) (days int, anchored bool) {
	var anchor time.Time
	if cc.LastInteraction != nil {
		anchor = cc.LastInteraction.OccurredAt
	}
	if cc.LastClosedPlan != nil && cc.LastClosedPlan.OpenedAt.After(anchor) {
		anchor = cc.LastClosedPlan.OpenedAt
	}
	if anchor.IsZero() {
		return 0, false
	}
	return int(now.Sub(anchor).Hours() / 24), true
}

// #endregion gates

// #region prioritize

// prioritize orders signals by type priority blended with confidence and
// recency. Deterministic: ties break on DetectedAt, then ID.
func prioritize(signals []store.Signal, now time.Time) []store.Signal {
	out := make([]store.Signal, len(signals))
	copy(out, signals)

	score := func(s store.Signal) float32 {
		weight, ok := typePriority[s.Kind]
		if !ok {
			weight = 0.5
		}
		daysOld := float32(now.Sub(s.DetectedAt).Hours() / 24)
		recency := 1 - daysOld/30
		if recency < 0 {
			recency = 0
		}
		return s.Confidence*weight*0.7 + recency*0.3
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := score(out[i]), score(out[j])
		if si != sj {
			return si > sj
		}
		if !out[i].DetectedAt.Equal(out[j].DetectedAt) {
			return out[i].DetectedAt.Before(out[j].DetectedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// #endregion prioritize
