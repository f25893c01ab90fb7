package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pagesift/pagesift/internal/classify"
)

// WriteTable renders the ranked similarity table, metadata, and optional
// sentiment as aligned text.
func WriteTable(w io.Writer, res *classify.Result, pageURL string) error {
	if res.Metadata.Title != "" {
		fmt.Fprintf(w, "Title:    %s\n", res.Metadata.Title)
	}
	if res.Metadata.SiteName != "" {
		fmt.Fprintf(w, "Site:     %s\n", res.Metadata.SiteName)
	}
	if res.Language != "" {
		fmt.Fprintf(w, "Language: %s\n", res.Language)
	}
	fmt.Fprintf(w, "URL:      %s\n\n", pageURL)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTOPIC\tSIMILARITY")
	for _, row := range res.Scores {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", row.Rank, row.Topic, row.Similarity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Sentiment != nil {
		fmt.Fprintf(w, "\nPolarity:     %.4f\nSubjectivity: %.4f\n", res.Sentiment.Polarity, res.Sentiment.Subjectivity)
	}
	return nil
}
