// Package match decides whether a signal satisfies a past interaction's
// follow-up trigger. A trigger matches on lexical keyword overlap or on
// semantic similarity above a configured threshold; when the similarity
// collaborator is unavailable or fails, matching fails closed to "no match".
package match

import (
	"context"
	"math"
)

// #region types

// Embedder abstracts the external similarity collaborator. Implementations
// may call a gRPC service or return canned vectors in tests.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config holds the trigger-matching knobs.
type Config struct {
	// SimilarityThreshold is the minimum cosine similarity for a semantic
	// match. Default 0.72: comfortably above the 0.6 confidence floor so a
	// weak semantic echo cannot qualify a borderline signal, and below the
	// similarity observed for known near-match pairs.
	SimilarityThreshold float32
}

// DefaultConfig returns the production matching defaults.
func DefaultConfig() Config {
	return Config{SimilarityThreshold: 0.72}
}

// Method records which gate produced a match.
type Method string

const (
	MethodNone     Method = "none"
	MethodLexical  Method = "lexical"
	MethodSemantic Method = "semantic"
)

// Result is the outcome of one trigger-match test.
type Result struct {
	Matched bool
	Method  Method
	Score   float32 // cosine similarity when semantic, keyword ratio when lexical
}

// #endregion types

// #region matcher

// Matcher tests signal text against follow-up triggers. embedder may be nil,
// in which case only the lexical gate runs.
type Matcher struct {
	embedder Embedder
	config   Config
}

// NewMatcher creates a Matcher.
func NewMatcher(embedder Embedder, config Config) *Matcher {
	return &Matcher{embedder: embedder, config: config}
}

// Matches tests whether signalText satisfies the trigger. The lexical gate
// runs first (no collaborator call); the semantic gate runs only when the
// lexical gate misses.
func (m *Matcher) Matches(ctx context.Context, trigger, signalText string) Result {
	triggerTokens := tokenize(trigger)
	if len(triggerTokens) == 0 {
		// A trigger with no matchable content cannot constrain anything.
		return Result{Matched: true, Method: MethodLexical, Score: 1}
	}

	signalTokens := tokenize(signalText)
	shared := sharedKeywords(triggerTokens, signalTokens)
	ratio := float32(shared) / float32(len(triggerTokens))
	if shared*2 >= len(triggerTokens) {
		return Result{Matched: true, Method: MethodLexical, Score: ratio}
	}

	if m.embedder == nil {
		return Result{Matched: false, Method: MethodNone, Score: ratio}
	}

	triggerEmb, err := m.embedder.Embed(ctx, trigger)
	if err != nil {
		// Fail closed: an unavailable collaborator never triggers outreach.
		return Result{Matched: false, Method: MethodNone, Score: 0}
	}
	signalEmb, err := m.embedder.Embed(ctx, signalText)
	if err != nil {
		return Result{Matched: false, Method: MethodNone, Score: 0}
	}

	sim := cosineSimilarity(triggerEmb, signalEmb)
	if sim >= m.config.SimilarityThreshold {
		return Result{Matched: true, Method: MethodSemantic, Score: sim}
	}
	return Result{Matched: false, Method: MethodNone, Score: sim}
}

// #endregion matcher

// #region helpers

// cosineSimilarity computes cosine similarity between two vectors.
// Returns 0 for zero-length or mismatched vectors.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return float32(dot / denom)
}

// #endregion helpers
