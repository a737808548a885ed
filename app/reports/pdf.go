package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// US-Letter layout in points, 72pt margins all around.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	marginLeft = 72.0
	marginTop  = 72.0
	bottomY    = pageHeight - 72.0

	titleSize = 14.0
	subSize   = 12.0
	bodySize  = 10.0
)

var colX = [5]float64{72, 150, 400, 450, 500}

func newLetterPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

func rightAligned(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

// ClassReportPDF lays out a (class, subject) range report as fixed-column
// text lines. Rows under the highlight cutoff render dark red. The column
// header is not reprinted on continuation pages; consumers have always read
// page one for the legend.
func ClassReportPDF(rows []Row, class, subject, start, end string) ([]byte, error) {
	pdf := newLetterPDF()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.Text(marginLeft, marginTop, fmt.Sprintf("Attendance Report: %s - %s", class, subject))
	pdf.SetFont("Helvetica", "", subSize)
	pdf.Text(marginLeft, marginTop+16, fmt.Sprintf("From %s to %s", start, end))

	y := marginTop + 38
	headers := [5]string{"Roll No", "Name", "Total", "Attended", "%"}
	pdf.SetFont("Helvetica", "B", bodySize)
	for i, h := range headers {
		pdf.Text(colX[i], y, h)
	}
	pdf.Line(marginLeft, y+2, 540, y+2)

	pdf.SetFont("Helvetica", "", bodySize)
	y += 14
	for _, r := range rows {
		if r.Percent < HighlightThreshold {
			pdf.SetTextColor(128, 0, 0)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		name := truncate(r.Name, 36)
		pdf.Text(colX[0], y, r.RollNo)
		pdf.Text(colX[1], y, name)
		rightAligned(pdf, colX[2]+20, y, fmt.Sprintf("%d", r.Total))
		rightAligned(pdf, colX[3]+20, y, fmt.Sprintf("%d", r.Attended))
		rightAligned(pdf, colX[4]+20, y, trimPercent(r.Percent))
		y += 14
		if y > bottomY {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", bodySize)
			y = marginTop
		}
	}
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultersPDF lists students under the defaulter cutoff, pre-aggregated
// across subjects and sorted by (roll_no, name, class).
func DefaultersPDF(rows []Row, title string) ([]byte, error) {
	pdf := newLetterPDF()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.Text(marginLeft, marginTop, title)

	pdf.SetFont("Helvetica", "", bodySize)
	y := marginTop + 28
	for _, r := range rows {
		if !IsDefaulter(r.Percent) {
			continue
		}
		line := fmt.Sprintf("%s  %s  %s  %d/%d  %s", r.RollNo, r.Name, r.Class, r.Attended, r.Total, FormatPercent(r.Percent))
		pdf.Text(marginLeft, y, line)
		y += 16
		if y > bottomY {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", bodySize)
			y = marginTop
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// trimPercent is FormatPercent without the suffix, for the numeric column.
func trimPercent(p float64) string {
	s := FormatPercent(p)
	return s[:len(s)-1]
}

// truncate cuts to at most max characters without splitting a multi-byte
// rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
