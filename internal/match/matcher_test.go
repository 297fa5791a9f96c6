package match

import (
	"context"
	"errors"
	"testing"
)

// #region stubs

// stubEmbedder returns canned vectors keyed by text.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (e *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	v, ok := e.vectors[text]
	if !ok {
		return nil, errors.New("unknown text")
	}
	return v, nil
}

// #endregion stubs

// #region lexical-tests

func TestMatchesLexical(t *testing.T) {
	m := NewMatcher(nil, DefaultConfig())
	ctx := context.Background()

	cases := []struct {
		name    string
		trigger string
		signal  string
		want    bool
	}{
		{
			"full overlap",
			"enterprise pilot secured",
			"CEO posted that the team secured its first enterprise pilot",
			true,
		},
		{
			"half overlap matches",
			"series a funding closed",
			"funding round closed last week",
			true,
		},
		{
			"no overlap",
			"enterprise pilot secured",
			"office dog adopted",
			false,
		},
		{
			"stopwords ignored",
			"the pilot and the team",
			"pilot team update",
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Matches(ctx, tc.trigger, tc.signal)
			if got.Matched != tc.want {
				t.Fatalf("Matches(%q, %q) = %v (method %s, score %.2f), want %v",
					tc.trigger, tc.signal, got.Matched, got.Method, got.Score, tc.want)
			}
		})
	}
}

func TestMatchesEmptyTriggerIsVacuous(t *testing.T) {
	m := NewMatcher(nil, DefaultConfig())
	got := m.Matches(context.Background(), "the and of", "anything at all")
	if !got.Matched {
		t.Fatal("a trigger with no matchable tokens must not block")
	}
}

// #endregion lexical-tests

// #region semantic-tests

func TestMatchesSemantic(t *testing.T) {
	trigger := "enterprise pilot secured"
	near := "Fortune 100 design partner"
	far := "office relocation announced"

	emb := &stubEmbedder{vectors: map[string][]float32{
		trigger: {1, 0, 0},
		near:    {0.9, 0.4, 0}, // cosine ~0.91
		far:     {0, 0, 1},     // cosine 0
	}}
	m := NewMatcher(emb, DefaultConfig())
	ctx := context.Background()

	got := m.Matches(ctx, trigger, near)
	if !got.Matched || got.Method != MethodSemantic {
		t.Fatalf("expected semantic match, got %+v", got)
	}
	if got := m.Matches(ctx, trigger, far); got.Matched {
		t.Fatalf("expected no match for unrelated text, got %+v", got)
	}
}

func TestMatchesFailsClosedOnEmbedderError(t *testing.T) {
	emb := &stubEmbedder{err: errors.New("collaborator down")}
	m := NewMatcher(emb, DefaultConfig())

	got := m.Matches(context.Background(), "enterprise pilot secured", "unrelated text entirely")
	if got.Matched {
		t.Fatal("an unavailable embedder must never produce a match")
	}
}

func TestMatchesNilEmbedderLexicalOnly(t *testing.T) {
	m := NewMatcher(nil, DefaultConfig())
	got := m.Matches(context.Background(), "enterprise pilot secured", "totally different words")
	if got.Matched {
		t.Fatal("nil embedder must fail closed past the lexical gate")
	}
}

// #endregion semantic-tests

// #region cosine-tests

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"mismatched length", []float32{1, 0}, []float32{1}, 0},
		{"empty", nil, nil, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if diff := got - tc.want; diff > 1e-5 || diff < -1e-5 {
				t.Fatalf("cosineSimilarity = %f, want %f", got, tc.want)
			}
		})
	}
}

// #endregion cosine-tests
