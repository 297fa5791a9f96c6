package cli

import (
	"fmt"

	"github.com/sagovc/reengage/internal/collab"
	"github.com/sagovc/reengage/internal/engine"
	"github.com/sagovc/reengage/internal/match"
	"github.com/sagovc/reengage/internal/plan"
	"github.com/sagovc/reengage/internal/policy"
	"github.com/sagovc/reengage/internal/store"
)

// pipeline bundles the wired components a command needs, plus their cleanup.
type pipeline struct {
	cfg   *AppConfig
	store *store.Store
	orch  *engine.Orchestrator

	closers []func() error
}

func (p *pipeline) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
}

// openStore opens just the store, for commands that never evaluate policy.
func openStore() (*AppConfig, *store.Store, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store at %s: %w", cfg.DBPath, err)
	}
	return cfg, st, nil
}

// openPipeline wires the full processing pipeline. Without a configured
// collaborator address the matcher runs lexical-only and generated payloads
// stay pending, which keeps offline processing usable.
func openPipeline() (*pipeline, error) {
	cfg, st, err := openStore()
	if err != nil {
		return nil, err
	}
	p := &pipeline{cfg: cfg, store: st}
	p.closers = append(p.closers, st.Close)

	var embedder match.Embedder
	var gen engine.Generator
	if cfg.CollabAddr != "" {
		client, err := collab.NewClient(cfg.CollabAddr)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("connect collaborator at %s: %w", cfg.CollabAddr, err)
		}
		p.closers = append(p.closers, client.Close)
		embedder = client
		gen = client
	}

	eval := policy.NewEvaluator(match.NewMatcher(embedder, cfg.Match), cfg.Policy)
	builder := plan.NewBuilder(cfg.Plan)
	p.orch = engine.NewOrchestrator(st, eval, builder, gen, engine.Config{
		UserID: cfg.UserID,
		Policy: cfg.Policy,
		Plan:   cfg.Plan,
	})
	return p, nil
}
