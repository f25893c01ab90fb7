package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pagesift/pagesift/internal/embed"
	"github.com/pagesift/pagesift/internal/extract"
	"github.com/pagesift/pagesift/internal/fetch"
	"github.com/pagesift/pagesift/internal/lang"
	"github.com/pagesift/pagesift/internal/sentiment"
	"github.com/pagesift/pagesift/internal/textproc"
)

// Options control a single classification call.
type Options struct {
	// Topics to score against. Empty means DefaultTopics.
	Topics []string
	// AnalyseSentiment toggles the sentiment stage. When false the result's
	// Sentiment stays nil; it is never zero-filled.
	AnalyseSentiment bool
	// MinLineWords is the cleaner threshold. Zero or negative selects the
	// default of 4.
	MinLineWords int
}

// Result is the outcome of one classification: the ranked similarity table
// plus optional sentiment and descriptive extras.
type Result struct {
	Scores    []Score
	Sentiment *sentiment.Score
	Metadata  extract.Metadata
	Language  string
}

// Classifier wires the pipeline stages together. All fields except Language
// are required. The value is stateless across calls; nothing persists.
type Classifier struct {
	Fetcher    *fetch.Client
	Extractor  extract.Extractor
	Normalizer *textproc.Normalizer
	Embedder   embed.Embedder
	Sentiment  sentiment.Analyzer
	Language   *lang.Detector
}

// Classify runs fetch, extract, clean, tokenize, score, and rank for one
// URL. Every stage failure aborts the call; degenerate content (an empty
// extraction, an all-noise page) flows through and scores whatever the
// embedding backend yields for it.
func (c *Classifier) Classify(ctx context.Context, pageURL string, opts Options) (*Result, error) {
	topics := opts.Topics
	if len(topics) == 0 {
		topics = DefaultTopics
	}
	minWords := opts.MinLineWords
	if minWords <= 0 {
		minWords = textproc.DefaultMinLineWords
	}

	htmlText, err := c.Fetcher.Get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := c.Extractor.Extract(htmlText, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}
	log.Debug().Str("url", pageURL).Int("chars", len(doc.Text)).Msg("content extracted")

	cleaned := textproc.CompactLines(doc.Text, minWords)
	tokens := c.Normalizer.Tokens(cleaned)
	joined := strings.Join(tokens, " ")
	log.Debug().Int("tokens", len(tokens)).Msg("text normalized")

	scores, err := c.scoreTopics(ctx, joined, topics)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Scores:   scores,
		Metadata: extract.PageMetadata(htmlText),
	}

	if c.Language != nil && doc.Text != "" {
		if name, ok := c.Language.Detect(doc.Text); ok {
			res.Language = name
			if !strings.EqualFold(name, "english") {
				log.Warn().Str("language", name).Msg("page is not English; stopword and lemma filtering are English-only")
			}
		}
	}

	if opts.AnalyseSentiment {
		// Sentiment reads the original extracted content, not the token stream.
		s := c.Sentiment.Analyze(doc.Text)
		res.Sentiment = &s
	}
	return res, nil
}

// scoreTopics embeds the document once alongside every topic word and ranks
// topics by cosine similarity against the document vector.
func (c *Classifier) scoreTopics(ctx context.Context, docText string, topics []string) ([]Score, error) {
	inputs := make([]string, 0, len(topics)+1)
	inputs = append(inputs, docText)
	inputs = append(inputs, topics...)

	vecs, err := c.Embedder.Embed(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	docVec := vecs[0]

	rows := make([]Score, len(topics))
	for i, topic := range topics {
		rows[i] = Score{Topic: topic, Similarity: embed.Cosine(docVec, vecs[i+1])}
	}
	rankScores(rows)
	return rows, nil
}
