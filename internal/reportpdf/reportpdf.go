// Package reportpdf renders a compliance.Report as a one-page PDF
// engineering note. It is a presentation collaborator: it imports the
// engine's output types, the engine never imports it.
package reportpdf

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/AbelV22/NAA-Web/internal/compliance"
)

// defaultTitle appears at the top of the sheet when Write is given an
// empty title; callers pass their own to name the sample.
const defaultTitle = "Neutron Activation Compliance Report"

// Write renders the report to w as a single-page A4 PDF with a
// summary block followed by one row per regulated isotope.
func Write(w io.Writer, title string, rep compliance.Report) error {
	if title == "" {
		title = defaultTitle
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	verdict := "COMPLIANT"
	if !rep.Summary.IsCompliant {
		verdict = "NON-COMPLIANT"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", verdict))
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Sum index (ΣFi): %.4f", rep.Summary.SumIndex))
	pdf.Ln(6)
	if rep.Summary.IsCompliant {
		pdf.Cell(0, 7, "Time to clear: already below limits")
	} else if rep.Summary.DaysToClear < 0 {
		pdf.Cell(0, 7, fmt.Sprintf("Time to clear: effectively never (dominant isotope %s is stable)", rep.Summary.DominantIsotope))
	} else {
		pdf.Cell(0, 7, fmt.Sprintf("Time to clear: %.1f days (dominant isotope %s)", rep.Summary.DaysToClear, rep.Summary.DominantIsotope))
	}
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	colWidths := []float64{35, 30, 35, 35, 25}
	headers := []string{"Isotope", "Activity (Bq)", "Specific (Bq/g)", "Limit (Bq/g)", "Fraction"}
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rep.Rows {
		pdf.CellFormat(colWidths[0], 7, row.Isotope.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, fmt.Sprintf("%.3e", row.ActivityBq), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%.3e", row.SpecificBqPerG), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, fmt.Sprintf("%.3e", row.LimitBqPerG), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 7, fmt.Sprintf("%.4f", row.Fraction), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
