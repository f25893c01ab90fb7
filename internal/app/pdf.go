package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pagesift/pagesift/internal/classify"
)

// writeReportPDF renders the ranked table as a minimal one-page-per-run PDF.
// Layout is intentionally simple: header lines, then a two-column table.
func writeReportPDF(res *classify.Result, pageURL, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := res.Metadata.Title
	if title == "" {
		title = "Topic classification"
	}
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, pageURL, "", 1, "L", false, 0, "")
	if res.Language != "" {
		pdf.CellFormat(0, 6, "Language: "+res.Language, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(15, 7, "Rank", "1", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, "Topic", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Similarity", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range res.Scores {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", row.Rank), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, row.Topic, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.4f", row.Similarity), "1", 1, "R", false, 0, "")
	}

	if res.Sentiment != nil {
		pdf.Ln(4)
		pdf.CellFormat(0, 6, fmt.Sprintf("Polarity: %.4f", res.Sentiment.Polarity), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Subjectivity: %.4f", res.Sentiment.Subjectivity), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}
