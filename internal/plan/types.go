package plan

// #region config

// Config toggles each planning rule independently and carries the resource
// category keyword map used for share_resource matching.
type Config struct {
	DraftOutreach bool
	ShareResource bool
	OfferIntro    bool
	LogCRM        bool

	// ResourceCategories maps a category key to the keywords that identify
	// it in a need signal's text.
	ResourceCategories map[string][]string
}

// DefaultConfig enables every rule and seeds the common resource categories.
func DefaultConfig() Config {
	return Config{
		DraftOutreach: true,
		ShareResource: true,
		OfferIntro:    true,
		LogCRM:        true,
		ResourceCategories: map[string][]string{
			"soc2":      {"soc2", "soc"},
			"security":  {"security", "posture", "compliance"},
			"hiring":    {"recruiting", "hiring", "candidates"},
			"gtm":       {"gtm", "go-to-market", "pricing"},
			"fundraise": {"fundraise", "fundraising", "deck", "term"},
		},
	}
}

// #endregion config

// #region payload-markers

// GenerationPending marks a payload whose text generation failed; the
// execution collaborator retries generation, not this core.
const GenerationPending = "generation:pending"

// #endregion payload-markers
