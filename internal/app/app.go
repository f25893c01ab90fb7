package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pagesift/pagesift/internal/classify"
	"github.com/pagesift/pagesift/internal/embed"
	"github.com/pagesift/pagesift/internal/extract"
	"github.com/pagesift/pagesift/internal/fetch"
	"github.com/pagesift/pagesift/internal/lang"
	"github.com/pagesift/pagesift/internal/sentiment"
	"github.com/pagesift/pagesift/internal/textproc"
)

const defaultUserAgent = "pagesift/1.0 (+https://github.com/pagesift/pagesift)"

// App assembles the pipeline from configuration and runs it once.
type App struct {
	cfg        Config
	classifier *classify.Classifier
}

func New(cfg Config) (*App, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("url is required")
	}
	// Fail before fetching anything if the embedding backend is unreachable
	// by construction.
	if cfg.EmbedAPIKey == "" && cfg.EmbedBaseURL == "" {
		return nil, errors.New("embedding backend not configured: set EMBED_API_KEY or EMBED_BASE_URL")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}

	extractor, err := extract.Backend(cfg.ExtractorName)
	if err != nil {
		return nil, err
	}
	normalizer, err := textproc.NewNormalizer()
	if err != nil {
		return nil, err
	}

	// Models load once here; the classifier treats them as read-only.
	c := &classify.Classifier{
		Fetcher: &fetch.Client{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.FetchTimeout,
		},
		Extractor:  extractor,
		Normalizer: normalizer,
		Embedder:   embed.NewOpenAI(cfg.EmbedBaseURL, cfg.EmbedAPIKey, cfg.EmbedModel),
		Sentiment:  sentiment.Lexicon{},
		Language:   lang.NewDetector(),
	}
	return &App{cfg: cfg, classifier: c}, nil
}

// Run classifies the configured URL and writes the optional PDF report.
func (a *App) Run(ctx context.Context) (*classify.Result, error) {
	start := time.Now()
	res, err := a.classifier.Classify(ctx, a.cfg.URL, classify.Options{
		Topics:           a.cfg.Topics,
		AnalyseSentiment: a.cfg.AnalyseSentiment,
		MinLineWords:     a.cfg.MinLineWords,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", a.cfg.URL).Dur("elapsed", time.Since(start)).Int("topics", len(res.Scores)).Msg("classification complete")

	if a.cfg.OutputPDFPath != "" {
		if err := writeReportPDF(res, a.cfg.URL, a.cfg.OutputPDFPath); err != nil {
			return nil, fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDFPath).Msg("PDF report written")
	}
	return res, nil
}
