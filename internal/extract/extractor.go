package extract

import (
	"fmt"
	"net/url"
	"strings"

	boilerpipe "github.com/jlubawy/go-boilerpipe"
	bpextractor "github.com/jlubawy/go-boilerpipe/extractor"

	readability "github.com/go-shiori/go-readability"
)

// Document is the extracted main content of a page.
type Document struct {
	Title string
	Text  string
}

// Extractor turns raw HTML into the page's dominant article text, stripping
// navigation, ads, and templated chrome. An empty Text is a valid result for
// pages with no detectable main content, not an error.
type Extractor interface {
	Extract(htmlText, pageURL string) (Document, error)
}

// BoilerpipeExtractor runs the boilerpipe article pipeline, a density and
// structure based boilerplate classifier.
type BoilerpipeExtractor struct{}

func (BoilerpipeExtractor) Extract(htmlText, pageURL string) (Document, error) {
	doc, err := boilerpipe.NewTextDocument(strings.NewReader(htmlText))
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}
	bpextractor.Article().Process(doc)
	return Document{Title: doc.Title, Text: doc.Content()}, nil
}

// ReadabilityExtractor uses the readability algorithm instead. Some pages
// that defeat the density heuristics read better through this one.
type ReadabilityExtractor struct{}

func (ReadabilityExtractor) Extract(htmlText, pageURL string) (Document, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Document{}, fmt.Errorf("parse url: %w", err)
	}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(htmlText), u)
	if err != nil {
		return Document{}, fmt.Errorf("readability: %w", err)
	}
	return Document{Title: article.Title, Text: article.TextContent}, nil
}

// Backend returns the extractor registered under name. An empty name selects
// boilerpipe.
func Backend(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "boilerpipe":
		return BoilerpipeExtractor{}, nil
	case "readability":
		return ReadabilityExtractor{}, nil
	case "heuristic":
		return HeuristicExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor backend: %q", name)
	}
}
