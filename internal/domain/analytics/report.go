package analytics

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Page geometry for the exported report, in points on US Letter.
const (
	reportMarginX  = 50.0
	reportTopY     = 60.0
	reportLineStep = 20.0
	reportBottomY  = 742.0
)

// WriteReport renders the export rows as a tabular PDF. The document is
// fully buffered before being written, since the PDF trailer cannot be
// emitted until every page is known. A zero-row result still produces a
// valid document with the title, filter line, and column header.
//
// The column header is drawn once, on the first page only; continuation
// pages carry data lines from the top.
func WriteReport(w io.Writer, f FilterSpec, rows []ExportRow) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle("Ophthalmology RWE Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(reportMarginX, reportTopY, "Ophthalmology RWE Report")

	pdf.SetFont("Helvetica", "", 12)
	y := reportTopY + 30
	pdf.Text(reportMarginX, y, "Filters Applied:")
	pdf.Text(reportMarginX+100, y, f.Description())

	y += 30
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(reportMarginX, y, "Date       BCVA     Injections     Age     Diagnosis")
	pdf.SetFont("Helvetica", "", 12)
	y += reportLineStep

	for _, row := range rows {
		line := fmt.Sprintf("%s   %.1f          %d            %d      %s",
			row.Date, row.BCVA, row.Injections, row.Age, row.Diagnosis)
		pdf.Text(reportMarginX, y, line)
		y += reportLineStep
		if y > reportBottomY {
			pdf.AddPage()
			y = reportTopY
		}
	}

	return pdf.Output(w)
}
