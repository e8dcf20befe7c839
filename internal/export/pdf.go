package export

import (
	"bytes"
	"fmt"

	"cardiowell/internal/assessment"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders the report as a paginated A4 document: title header, rule line,
// one block per narrative section, generated-on footer.
func PDF(report *assessment.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, fmt.Sprintf("Generated on: %s", report.GeneratedAt.Format("2006-01-02 15:04 MST")), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "CardioWell Cardiac Risk Assessment", "", 1, "L", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, "CardioWell - Cardiac Risk Assessment Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, fmt.Sprintf("Report ID: %s", report.ReportID), "", 1, "L", false, 0, "")

	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(40, 40, 40)
	x, y := pdf.GetXY()
	pdf.Line(x, y+2, 190, y+2)
	pdf.Ln(6)

	for _, section := range sectionOrder {
		body := section.Field(report)
		if body == "" {
			continue
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(0, 8, section.Title, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.MultiCell(0, 5, body, "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
