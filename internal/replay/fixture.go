package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sagovc/reengage/internal/store"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay scenario.
type Fixture struct {
	Description string               `json:"description"`
	Now         time.Time            `json:"now"`
	Profile     FixtureProfile       `json:"profile"`
	Interaction *FixtureInteraction  `json:"interaction,omitempty"`
	Config      FixtureConfig        `json:"config"`
	Embeddings  map[string][]float32 `json:"embeddings,omitempty"`
	Batches     []FixtureBatch       `json:"batches"`
	Expected    []FixtureExpected    `json:"expected"`
}

// FixtureProfile mirrors store.UserProfile with JSON tags.
type FixtureProfile struct {
	UserID          string            `json:"user_id"`
	Name            string            `json:"name"`
	ThesisKeywords  []string          `json:"thesis_keywords"`
	Tone            string            `json:"tone"`
	Availability    []string          `json:"availability"`
	Channels        []string          `json:"preferred_channels"`
	AutoSendEnabled bool              `json:"auto_send_enabled"`
	Resources       []FixtureResource `json:"resources,omitempty"`
}

// FixtureResource mirrors store.Resource with JSON tags.
type FixtureResource struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Link     string `json:"link"`
}

// FixtureInteraction mirrors store.Interaction with JSON tags.
type FixtureInteraction struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	OccurredAt      time.Time `json:"occurred_at"`
	Outcome         string    `json:"outcome"`
	Notes           string    `json:"notes"`
	FollowupTrigger string    `json:"followup_trigger"`
	Topics          []string  `json:"topics,omitempty"`
}

// FixtureConfig mirrors the policy and match configs with JSON tags.
type FixtureConfig struct {
	ConfidenceThreshold float32 `json:"confidence_threshold"`
	CooldownDays        int     `json:"cooldown_days"`
	SimilarityThreshold float32 `json:"similarity_threshold"`
}

// FixtureBatch is one Process call: a company and its incoming signals.
type FixtureBatch struct {
	CompanyID string          `json:"company_id"`
	Signals   []FixtureSignal `json:"signals"`
}

// FixtureSignal mirrors store.Signal with JSON tags.
type FixtureSignal struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Evidence    string    `json:"evidence"`
	Confidence  float32   `json:"confidence"`
	Source      string    `json:"source"`
	DetectedAt  time.Time `json:"detected_at"`
}

// FixtureExpected is the expected result of one batch, in batch order.
type FixtureExpected struct {
	CompanyID   string   `json:"company_id"`
	Outcome     string   `json:"outcome"`
	ActionKinds []string `json:"action_kinds,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToProfile converts a FixtureProfile to a domain UserProfile.
func (p *FixtureProfile) ToProfile() store.UserProfile {
	resources := make([]store.Resource, len(p.Resources))
	for i, r := range p.Resources {
		resources[i] = store.Resource{Category: r.Category, Label: r.Label, Link: r.Link}
	}
	return store.UserProfile{
		UserID:            p.UserID,
		Name:              p.Name,
		ThesisKeywords:    p.ThesisKeywords,
		Tone:              p.Tone,
		Availability:      p.Availability,
		PreferredChannels: p.Channels,
		AutoSendEnabled:   p.AutoSendEnabled,
		ResourceLibrary:   resources,
	}
}

// ToInteraction converts a FixtureInteraction to a domain Interaction.
func (i *FixtureInteraction) ToInteraction() store.Interaction {
	return store.Interaction{
		ID:              i.ID,
		CompanyID:       i.CompanyID,
		OccurredAt:      i.OccurredAt,
		Outcome:         i.Outcome,
		Notes:           i.Notes,
		FollowupTrigger: i.FollowupTrigger,
		Topics:          i.Topics,
	}
}

// ToSignal converts a FixtureSignal to a domain Signal.
func (s *FixtureSignal) ToSignal() store.Signal {
	return store.Signal{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Kind:        store.SignalKind(s.Kind),
		Title:       s.Title,
		Description: s.Description,
		Evidence:    s.Evidence,
		Confidence:  s.Confidence,
		Source:      store.SignalSource(s.Source),
		DetectedAt:  s.DetectedAt,
	}
}

// #endregion fixture-loader
