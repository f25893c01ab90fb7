package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata is descriptive page information reported alongside the ranked
// table. It comes from the document head, not the extracted article body.
type Metadata struct {
	Title       string
	Description string
	SiteName    string
}

// PageMetadata reads title and meta tags from raw HTML. Best effort: a page
// without metadata yields zero values.
func PageMetadata(htmlText string) Metadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return Metadata{}
	}

	md := Metadata{
		Title: strings.TrimSpace(doc.Find("head title").First().Text()),
	}
	if v, ok := metaContent(doc, `meta[property="og:title"]`); ok && md.Title == "" {
		md.Title = v
	}
	if v, ok := metaContent(doc, `meta[name="description"]`); ok {
		md.Description = v
	} else if v, ok := metaContent(doc, `meta[property="og:description"]`); ok {
		md.Description = v
	}
	if v, ok := metaContent(doc, `meta[property="og:site_name"]`); ok {
		md.SiteName = v
	}
	return md
}

func metaContent(doc *goquery.Document, selector string) (string, bool) {
	v, ok := doc.Find(selector).First().Attr("content")
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
