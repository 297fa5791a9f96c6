package policy

import (
	"context"

	"github.com/sagovc/reengage/internal/match"
	"github.com/sagovc/reengage/internal/store"
)

// #region outcome

// Outcome is the policy decision for one signal batch.
type Outcome string

const (
	OutcomeReengage   Outcome = "reengage"
	OutcomeExtend     Outcome = "extend_existing_plan"
	OutcomeNoAction   Outcome = "no_action"
	OutcomeFlagReview Outcome = "flag_for_review"
)

// Positive reports whether the outcome opens or extends a plan.
func (o Outcome) Positive() bool {
	return o == OutcomeReengage || o == OutcomeExtend
}

// #endregion outcome

// #region config

// Config holds the evaluator's gates.
type Config struct {
	ConfidenceThreshold float32 // minimum signal confidence, default 0.6
	CooldownDays        int     // minimum days before a new plan may open
}

// DefaultConfig returns the production policy defaults.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.6,
		CooldownDays:        14,
	}
}

// #endregion config

// #region company-context

// CompanyContext bundles everything the evaluator needs for one company's
// new signal batch.
type CompanyContext struct {
	CompanyID       string
	Signals         []store.Signal
	LastInteraction *store.Interaction      // nil = first contact
	OpenPlan        *store.ReengagementPlan // nil = none open
	LastClosedPlan  *store.ReengagementPlan // nil = none closed yet
}

// #endregion company-context

// #region evaluation

// Evaluation is the full decision output for a batch. Flagged signals are
// reported alongside a positive outcome, never suppressing it.
type Evaluation struct {
	Outcome   Outcome
	Reason    string
	Flagged   []store.Signal // risk partition, routed to review
	Qualified []store.Signal // priority-ordered outreach candidates
}

// #endregion evaluation

// #region trigger-matcher

// TriggerMatcher abstracts the trigger-match step so the evaluator stays
// testable without a similarity collaborator.
type TriggerMatcher interface {
	Matches(ctx context.Context, trigger, signalText string) match.Result
}

// #endregion trigger-matcher
