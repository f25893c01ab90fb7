package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pagesift/pagesift/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	var (
		pageURL       string
		topicsCSV     string
		sentimentOn   bool
		configPath    string
		extractorName string
		minWords      int
		fetchTimeout  time.Duration
		embedBase     string
		embedModel    string
		embedKey      string
		outputPDF     string
		verbose       bool
	)

	flag.StringVar(&pageURL, "url", "", "Page URL to classify")
	flag.StringVar(&topicsCSV, "topics", "", "Comma-separated topic words (default: stock topic list)")
	flag.BoolVar(&sentimentOn, "sentiment", false, "Also compute polarity/subjectivity of the page content")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; flags take precedence")
	flag.StringVar(&extractorName, "extractor", "", "Content extractor backend: boilerpipe, readability, or heuristic")
	flag.IntVar(&minWords, "min.words", 0, "Discard extracted lines with this many words or fewer (default 4)")
	flag.DurationVar(&fetchTimeout, "timeout", 0, "Fetch timeout (default 30s)")
	flag.StringVar(&embedBase, "embed.base", os.Getenv("EMBED_BASE_URL"), "OpenAI-compatible embeddings base URL")
	flag.StringVar(&embedModel, "embed.model", os.Getenv("EMBED_MODEL"), "Embedding model name")
	flag.StringVar(&embedKey, "embed.key", "", "API key for the embeddings backend")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path for a PDF report")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		URL:              pageURL,
		Topics:           splitTopics(topicsCSV),
		AnalyseSentiment: sentimentOn,
		ExtractorName:    extractorName,
		MinLineWords:     minWords,
		FetchTimeout:     fetchTimeout,
		EmbedBaseURL:     embedBase,
		EmbedModel:       embedModel,
		EmbedAPIKey:      embedKey,
		OutputPDFPath:    outputPDF,
		Verbose:          verbose,
	}

	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file")
			os.Exit(1)
		}
		app.MergeFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("startup")
		os.Exit(1)
	}

	res, err := a.Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("classification failed")
		os.Exit(1)
	}

	if err := app.WriteTable(os.Stdout, res, cfg.URL); err != nil {
		log.Error().Err(err).Msg("write output")
		os.Exit(1)
	}
}

func splitTopics(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var topics []string
	for _, t := range strings.Split(csv, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
