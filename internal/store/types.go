package store

import (
	"fmt"
	"time"
)

// #region signal-kind

// SignalKind is the closed set of signal categories the core accepts.
// Anything outside this set is rejected at the ingestion boundary.
type SignalKind string

const (
	KindTraction        SignalKind = "traction"
	KindHiring          SignalKind = "hiring"
	KindFunding         SignalKind = "funding"
	KindNeed            SignalKind = "need"
	KindRisk            SignalKind = "risk"
	KindExecutiveChange SignalKind = "executive_change"
)

// knownKinds guards the closed enumeration.
var knownKinds = map[SignalKind]bool{
	KindTraction:        true,
	KindHiring:          true,
	KindFunding:         true,
	KindNeed:            true,
	KindRisk:            true,
	KindExecutiveChange: true,
}

// IsRisk reports whether the kind belongs to the review partition and must
// never feed outreach.
func (k SignalKind) IsRisk() bool {
	return k == KindRisk || k == KindExecutiveChange
}

// #endregion signal-kind

// #region signal-source

// SignalSource identifies the channel a signal was detected on.
type SignalSource string

const (
	SourceGmail       SignalSource = "gmail"
	SourceSlack       SignalSource = "slack"
	SourceLinkedIn    SignalSource = "linkedin"
	SourceTwitter     SignalSource = "twitter"
	SourceNews        SignalSource = "news"
	SourceCrunchbase  SignalSource = "crunchbase"
	SourceCompanySite SignalSource = "company_site"
	SourceManual      SignalSource = "manual"
)

// #endregion signal-source

// #region signal

// Signal is one detected event about a company. Immutable once persisted;
// the upstream detector creates it, the core only reads it.
type Signal struct {
	ID          string
	CompanyID   string
	Kind        SignalKind
	Title       string
	Description string
	Evidence    string
	Confidence  float32
	Source      SignalSource
	DetectedAt  time.Time
	RawRef      string // opaque pointer to the originating message
}

// Validate rejects malformed signals before they reach the evaluator.
func (s Signal) Validate() error {
	if s.CompanyID == "" {
		return fmt.Errorf("signal %s: empty company_id", s.ID)
	}
	if !knownKinds[s.Kind] {
		return fmt.Errorf("signal %s: unknown kind %q", s.ID, s.Kind)
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("signal %s: confidence %.4f out of [0,1]", s.ID, s.Confidence)
	}
	return nil
}

// Text returns the free text used for trigger matching.
func (s Signal) Text() string {
	if s.Description == "" {
		return s.Title
	}
	return s.Title + " " + s.Description
}

// #endregion signal

// #region interaction

// Interaction is a past meaningful touchpoint with a company. History is
// append-only; at most one interaction is "the most recent" for cooldown.
type Interaction struct {
	ID              string
	CompanyID       string
	OccurredAt      time.Time
	Outcome         string // pass_for_now | passed | invested
	Notes           string
	FollowupTrigger string // free-text condition that should prompt re-engagement
	Topics          []string
}

// #endregion interaction

// #region profile

// Resource is a previously-approved static asset the agent may share without
// a fresh approval (e.g. a SOC2 readiness template link).
type Resource struct {
	Category string // lowercase match key, e.g. "soc2"
	Label    string
	Link     string
}

// UserProfile is the investor-side actor the agent acts for. Read-only to
// the core; mutated only by explicit configuration changes.
type UserProfile struct {
	UserID            string
	Name              string
	ThesisKeywords    []string
	Tone              string
	Availability      []string
	PreferredChannels []string
	AutoSendEnabled   bool
	ResourceLibrary   []Resource
}

// StaticResource returns the library resource for a category, if any.
func (p UserProfile) StaticResource(category string) (Resource, bool) {
	for _, r := range p.ResourceLibrary {
		if r.Category == category {
			return r, true
		}
	}
	return Resource{}, false
}

// #endregion profile

// #region plan

// PlanStatus is the lifecycle state of a ReengagementPlan.
type PlanStatus string

const (
	PlanOpen   PlanStatus = "open"
	PlanClosed PlanStatus = "closed"
)

// ReengagementPlan is the company-scoped container of actions produced by a
// positive policy decision. At most one open plan per company at any time.
type ReengagementPlan struct {
	ID               string
	CompanyID        string
	Status           PlanStatus
	OpenedAt         time.Time
	ClosedAt         time.Time // zero while open
	TriggeringSignal []string  // ordered signal IDs
	Actions          []PlannedAction
}

// #endregion plan

// #region action

// ActionKind is one concrete follow-up step category.
type ActionKind string

const (
	ActionDraftOutreach ActionKind = "draft_outreach"
	ActionShareResource ActionKind = "share_resource"
	ActionOfferIntro    ActionKind = "offer_intro"
	ActionLogCRM        ActionKind = "log_crm"
	ActionInternalNote  ActionKind = "internal_note"
	ActionFlagReview    ActionKind = "flag_review"
)

// ActionStatus tracks the two-phase approval/execution state machine.
type ActionStatus string

const (
	StatusPending  ActionStatus = "pending"
	StatusApproved ActionStatus = "approved"
	StatusExecuted ActionStatus = "executed"
	StatusRejected ActionStatus = "rejected"
	StatusFailed   ActionStatus = "failed"
)

// Terminal reports whether the status ends an action's lifecycle.
func (s ActionStatus) Terminal() bool {
	return s == StatusExecuted || s == StatusRejected || s == StatusFailed
}

// PlannedAction is one concrete follow-up step inside a plan. Created by the
// plan builder; status transitions are owned by the external approval and
// execution collaborators.
type PlannedAction struct {
	ID               string
	PlanID           string
	Kind             ActionKind
	RequiresApproval bool
	Status           ActionStatus
	Payload          string
	PayloadKey       string // dedupe key within a plan: (Kind, PayloadKey) is unique
	SignalIDs        []string
	CreatedAt        time.Time
	ExecutedAt       time.Time // zero until executed
}

// #endregion action
