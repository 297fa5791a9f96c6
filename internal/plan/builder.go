// Package plan assembles the ordered, approval-gated action sequence for a
// positive policy decision. Actions are emitted in the fixed priority order
// draft_outreach, share_resource, offer_intro, log_crm; the review path is
// its own exclusive sequence.
package plan

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sagovc/reengage/internal/policy"
	"github.com/sagovc/reengage/internal/store"
)

// #region builder

// Builder plans concrete actions from qualified signals.
type Builder struct {
	config Config
}

// NewBuilder creates a Builder.
func NewBuilder(config Config) *Builder {
	return &Builder{config: config}
}

// #endregion builder

// #region build-actions

// BuildActions produces the outreach-path action sequence for a reengage or
// extend decision. Payload text for draft_outreach and personalized
// share_resource actions is filled in by the orchestrator via the generation
// collaborator; the builder only slots the request.
func (b *Builder) BuildActions(
	planID string,
	outcome policy.Outcome,
	signals []store.Signal,
	profile store.UserProfile,
	now time.Time,
) []store.PlannedAction {
	if !outcome.Positive() || len(signals) == 0 {
		return nil
	}

	var actions []store.PlannedAction
	allIDs := signalIDs(signals)

	// Primary: personalized re-engagement outreach, one per plan.
	if b.config.DraftOutreach && hasOutreachSignal(signals) {
		actions = append(actions, store.PlannedAction{
			ID:               uuid.New().String(),
			PlanID:           planID,
			Kind:             store.ActionDraftOutreach,
			RequiresApproval: !profile.AutoSendEnabled,
			Status:           store.StatusPending,
			PayloadKey:       "outreach",
			SignalIDs:        allIDs,
			CreatedAt:        now,
		})
	}

	// Secondary: resource shares for need signals matching a known category.
	// One action per category; (kind, payload key) is unique within a plan.
	if b.config.ShareResource {
		sharedCategories := make(map[string]bool)
		for _, s := range signals {
			if s.Kind != store.KindNeed {
				continue
			}
			category, ok := b.matchCategory(s.Text())
			if !ok || sharedCategories[category] {
				continue
			}
			sharedCategories[category] = true
			a := store.PlannedAction{
				ID:         uuid.New().String(),
				PlanID:     planID,
				Kind:       store.ActionShareResource,
				Status:     store.StatusPending,
				PayloadKey: category,
				SignalIDs:  []string{s.ID},
				CreatedAt:  now,
			}
			if res, static := profile.StaticResource(category); static {
				// Previously-approved static fulfillment ships as-is.
				a.RequiresApproval = false
				a.Payload = res.Link
			} else {
				// A fresh personalized message needs approval unless the
				// profile opted into auto-send.
				a.RequiresApproval = !profile.AutoSendEnabled
			}
			actions = append(actions, a)
		}
	}

	// Intros name a third party and always require approval.
	if b.config.OfferIntro {
		offered := make(map[string]bool)
		for _, s := range signals {
			if s.Kind != store.KindHiring || !networkCanFill(s) {
				continue
			}
			key := slug(s.Title)
			if offered[key] {
				continue
			}
			offered[key] = true
			actions = append(actions, store.PlannedAction{
				ID:               uuid.New().String(),
				PlanID:           planID,
				Kind:             store.ActionOfferIntro,
				RequiresApproval: true,
				Status:           store.StatusPending,
				Payload:          fmt.Sprintf("Offer candidate intros (triggered by: %s)", s.Title),
				PayloadKey:       slug(s.Title),
				SignalIDs:        []string{s.ID},
				CreatedAt:        now,
			})
		}
	}

	// Every batch ends with a CRM record.
	if b.config.LogCRM {
		actions = append(actions, store.PlannedAction{
			ID:         uuid.New().String(),
			PlanID:     planID,
			Kind:       store.ActionLogCRM,
			Status:     store.StatusPending,
			Payload:    fmt.Sprintf("Record %d signals and outreach in CRM", len(signals)),
			PayloadKey: "crm",
			SignalIDs:  allIDs,
			CreatedAt:  now,
		})
	}

	return actions
}

// #endregion build-actions

// #region build-review

// BuildReviewActions produces the exclusive review-path sequence for flagged
// signals: one internal note and one review flag, both auto. No outreach
// actions are ever generated here.
func (b *Builder) BuildReviewActions(planID string, flagged []store.Signal, now time.Time) []store.PlannedAction {
	if len(flagged) == 0 {
		return nil
	}

	titles := make([]string, len(flagged))
	for i, s := range flagged {
		titles[i] = fmt.Sprintf("%s (%s, %.2f)", s.Title, s.Kind, s.Confidence)
	}
	ids := signalIDs(flagged)

	return []store.PlannedAction{
		{
			ID:         uuid.New().String(),
			PlanID:     planID,
			Kind:       store.ActionInternalNote,
			Status:     store.StatusPending,
			Payload:    "Review-bound signals: " + strings.Join(titles, "; "),
			PayloadKey: "note",
			SignalIDs:  ids,
			CreatedAt:  now,
		},
		{
			ID:         uuid.New().String(),
			PlanID:     planID,
			Kind:       store.ActionFlagReview,
			Status:     store.StatusPending,
			Payload:    fmt.Sprintf("Flag %d signals for operator review", len(flagged)),
			PayloadKey: "flag",
			SignalIDs:  ids,
			CreatedAt:  now,
		},
	}
}

// #endregion build-review

// #region helpers

// hasOutreachSignal reports whether any signal justifies drafting outreach.
func hasOutreachSignal(signals []store.Signal) bool {
	for _, s := range signals {
		switch s.Kind {
		case store.KindTraction, store.KindHiring, store.KindFunding:
			return true
		}
	}
	return false
}

// matchCategory finds the first configured resource category whose keywords
// appear in the signal text. Categories are scanned in sorted order so the
// chosen category is stable across runs.
func (b *Builder) matchCategory(text string) (string, bool) {
	lower := strings.ToLower(text)
	categories := make([]string, 0, len(b.config.ResourceCategories))
	for c := range b.config.ResourceCategories {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, category := range categories {
		for _, kw := range b.config.ResourceCategories[category] {
			if strings.Contains(lower, kw) {
				return category, true
			}
		}
	}
	return "", false
}

// roleWords identify postings an investor network can plausibly fill:
// leadership and GTM roles rather than arbitrary openings.
var roleWords = []string{
	"head", "vp", "chief", "director", "lead", "leadership",
	"sales", "marketing", "gtm", "engineering", "founding",
}

func networkCanFill(s store.Signal) bool {
	lower := strings.ToLower(s.Text())
	for _, w := range roleWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func signalIDs(signals []store.Signal) []string {
	ids := make([]string, len(signals))
	for i, s := range signals {
		ids[i] = s.ID
	}
	return ids
}

// slug normalizes a title into a stable dedupe key.
func slug(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	return strings.Join(fields, "-")
}

// #endregion helpers
