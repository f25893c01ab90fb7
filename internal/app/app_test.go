package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pagesift/pagesift/internal/classify"
	"github.com/pagesift/pagesift/internal/extract"
	"github.com/pagesift/pagesift/internal/sentiment"
)

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New(Config{EmbedAPIKey: "k"}); err == nil {
		t.Fatalf("expected error for missing url")
	}
}

func TestNew_RequiresEmbeddingBackend(t *testing.T) {
	if _, err := New(Config{URL: "https://example.com"}); err == nil {
		t.Fatalf("expected error for unconfigured embedding backend")
	}
}

func TestNew_RejectsUnknownExtractor(t *testing.T) {
	cfg := Config{URL: "https://example.com", EmbedAPIKey: "k", ExtractorName: "nope"}
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for unknown extractor")
	}
}

func TestLoadFileConfig_Merge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pagesift.yaml")
	content := `
url: https://example.com/article
topics: [automotive, cooking]
sentiment: true
extractor: heuristic
min:
  words: 6
fetch:
  timeout: 10s
embed:
  base: http://localhost:8080/v1
  model: local-embed
output:
  pdf: out.pdf
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := Config{URL: "https://flags-win.example.com"}
	MergeFileConfig(&cfg, fc)

	if cfg.URL != "https://flags-win.example.com" {
		t.Fatalf("flag value should win, got %q", cfg.URL)
	}
	if len(cfg.Topics) != 2 || cfg.Topics[0] != "automotive" {
		t.Fatalf("topics not merged: %v", cfg.Topics)
	}
	if !cfg.AnalyseSentiment {
		t.Fatalf("sentiment not merged")
	}
	if cfg.ExtractorName != "heuristic" || cfg.MinLineWords != 6 {
		t.Fatalf("pipeline settings not merged: %+v", cfg)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("timeout not merged: %v", cfg.FetchTimeout)
	}
	if cfg.EmbedBaseURL != "http://localhost:8080/v1" || cfg.EmbedModel != "local-embed" {
		t.Fatalf("embed settings not merged: %+v", cfg)
	}
	if cfg.OutputPDFPath != "out.pdf" {
		t.Fatalf("pdf output not merged: %q", cfg.OutputPDFPath)
	}
}

func sampleResult() *classify.Result {
	s := sentiment.Score{Polarity: 0.25, Subjectivity: 0.1}
	return &classify.Result{
		Scores: []classify.Score{
			{Rank: 0, Topic: "automotive", Similarity: 0.91},
			{Rank: 1, Topic: "cooking", Similarity: 0.12},
		},
		Sentiment: &s,
		Metadata:  extract.Metadata{Title: "Charging Ahead", SiteName: "Example News"},
		Language:  "English",
	}
}

func TestWriteTable(t *testing.T) {
	var b strings.Builder
	if err := WriteTable(&b, sampleResult(), "https://example.com/a"); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := b.String()
	for _, want := range []string{"Charging Ahead", "automotive", "0.9100", "cooking", "Polarity", "0.2500", "English"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "automotive") > strings.Index(out, "cooking") {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestWriteTable_NoSentimentSection(t *testing.T) {
	res := sampleResult()
	res.Sentiment = nil
	var b strings.Builder
	if err := WriteTable(&b, res, "https://example.com/a"); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	if strings.Contains(b.String(), "Polarity") {
		t.Fatalf("sentiment section should be absent:\n%s", b.String())
	}
}

func TestWriteReportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := writeReportPDF(sampleResult(), "https://example.com/a", path); err != nil {
		t.Fatalf("writeReportPDF: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(b) == 0 || !strings.HasPrefix(string(b), "%PDF") {
		t.Fatalf("expected a PDF file, got %d bytes", len(b))
	}
}
