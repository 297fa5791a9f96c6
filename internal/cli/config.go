package cli

import (
	"fmt"

	"github.com/sagovc/reengage/internal/match"
	"github.com/sagovc/reengage/internal/plan"
	"github.com/sagovc/reengage/internal/policy"
	"github.com/spf13/viper"
)

// AppConfig is the resolved runtime configuration for every command.
type AppConfig struct {
	DBPath     string
	CollabAddr string
	UserID     string

	Policy policy.Config
	Match  match.Config
	Plan   plan.Config
}

// LoadConfig reads .reengagerc.yaml, falling back to defaults for any key
// the file omits. An explicit --config path must exist; the default search
// tolerates a missing file.
func LoadConfig(path string) (*AppConfig, error) {
	policyDefaults := policy.DefaultConfig()
	matchDefaults := match.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".reengagerc")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetDefault("db.path", "reengage.db")
	v.SetDefault("collab.addr", "")
	v.SetDefault("user.id", "default")
	v.SetDefault("policy.confidence_threshold", policyDefaults.ConfidenceThreshold)
	v.SetDefault("policy.cooldown_days", policyDefaults.CooldownDays)
	v.SetDefault("match.similarity_threshold", matchDefaults.SimilarityThreshold)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &AppConfig{
		DBPath:     v.GetString("db.path"),
		CollabAddr: v.GetString("collab.addr"),
		UserID:     v.GetString("user.id"),
		Policy: policy.Config{
			ConfidenceThreshold: float32(v.GetFloat64("policy.confidence_threshold")),
			CooldownDays:        v.GetInt("policy.cooldown_days"),
		},
		Match: match.Config{
			SimilarityThreshold: float32(v.GetFloat64("match.similarity_threshold")),
		},
		Plan: plan.DefaultConfig(),
	}

	if cfg.Policy.ConfidenceThreshold < 0 || cfg.Policy.ConfidenceThreshold > 1 {
		return nil, fmt.Errorf("policy.confidence_threshold %.2f out of [0,1]", cfg.Policy.ConfidenceThreshold)
	}
	if cfg.Policy.CooldownDays < 0 {
		return nil, fmt.Errorf("policy.cooldown_days %d must not be negative", cfg.Policy.CooldownDays)
	}
	return cfg, nil
}
