package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.EmbedBaseURL == "" {
		cfg.EmbedBaseURL = os.Getenv("EMBED_BASE_URL")
	}
	if cfg.EmbedModel == "" {
		cfg.EmbedModel = os.Getenv("EMBED_MODEL")
	}
	if cfg.EmbedAPIKey == "" {
		// Support the generic OpenAI variable as a fallback.
		v := os.Getenv("EMBED_API_KEY")
		if v == "" {
			v = os.Getenv("OPENAI_API_KEY")
		}
		cfg.EmbedAPIKey = v
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("PAGESIFT_USER_AGENT")
	}
}
