package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration schema. Nested sections map
// naturally to flags and env variables; flags win over the file.
type FileConfig struct {
	URL       string   `yaml:"url"`
	Topics    []string `yaml:"topics"`
	Sentiment bool     `yaml:"sentiment"`

	Extractor string `yaml:"extractor"`

	Min struct {
		Words int `yaml:"words"`
	} `yaml:"min"`

	Fetch struct {
		// Timeout is a Go duration string, e.g. "30s".
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"userAgent"`
	} `yaml:"fetch"`

	Embed struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"embed"`

	Output struct {
		PDF string `yaml:"pdf"`
	} `yaml:"output"`

	Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads and parses the YAML file at path.
func LoadFileConfig(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

// MergeFileConfig fills empty cfg fields from fc. Values already set on cfg
// (from flags) keep precedence.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.URL == "" {
		cfg.URL = fc.URL
	}
	if len(cfg.Topics) == 0 {
		cfg.Topics = fc.Topics
	}
	if !cfg.AnalyseSentiment {
		cfg.AnalyseSentiment = fc.Sentiment
	}
	if cfg.ExtractorName == "" {
		cfg.ExtractorName = fc.Extractor
	}
	if cfg.MinLineWords == 0 {
		cfg.MinLineWords = fc.Min.Words
	}
	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout != "" {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.EmbedBaseURL == "" {
		cfg.EmbedBaseURL = fc.Embed.BaseURL
	}
	if cfg.EmbedModel == "" {
		cfg.EmbedModel = fc.Embed.Model
	}
	if cfg.EmbedAPIKey == "" {
		cfg.EmbedAPIKey = fc.Embed.APIKey
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = fc.Output.PDF
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
