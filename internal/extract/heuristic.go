package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// HeuristicExtractor walks the parse tree directly, preferring <main> or
// <article> over <body> and skipping obvious boilerplate containers. It has
// no tuning knobs and exists as a predictable, dependency-light fallback.
type HeuristicExtractor struct{}

func (HeuristicExtractor) Extract(htmlText, pageURL string) (Document, error) {
	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return Document{}, nil
	}

	content := findFirst(root, "main")
	if content == nil {
		content = findFirst(root, "article")
	}
	if content == nil {
		content = findFirst(root, "body")
	}

	var b strings.Builder
	if content != nil {
		collectText(&b, content)
	}
	return Document{
		Title: strings.TrimSpace(titleOf(root)),
		Text:  normalizeWhitespace(b.String()),
	}, nil
}

func titleOf(root *html.Node) string {
	head := findFirst(root, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

var skippedContainers = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"nav": true, "footer": true, "aside": true, "iframe": true,
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		if skippedContainers[name] {
			return
		}
		switch name {
		case "br", "hr", "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol", "div":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		data := strings.ReplaceAll(n.Data, "\t", " ")
		b.WriteString(strings.ReplaceAll(data, "\r", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li":
			b.WriteString("\n")
		}
	}
}

// normalizeWhitespace collapses runs of spaces within lines and drops blank
// lines so the downstream line-length filter sees one segment per block.
func normalizeWhitespace(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}
