package app

import "time"

// Config holds runtime configuration for one classification run.
type Config struct {
	URL string

	// Topics to score; empty means the stock list.
	Topics           []string
	AnalyseSentiment bool

	// Pipeline tuning
	ExtractorName string
	MinLineWords  int
	FetchTimeout  time.Duration
	UserAgent     string

	// Embeddings backend (OpenAI-compatible)
	EmbedBaseURL string
	EmbedModel   string
	EmbedAPIKey  string

	// Output
	OutputPDFPath string
	Verbose       bool
}
