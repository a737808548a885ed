package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// FormatPercent renders a percentage the way reports have always shown it:
// two decimals at most, at least one ("0.0%", "75.0%", "33.33%").
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 2, 64)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1]
	}
	return s + "%"
}

// ShortRoll is the compact roll display used on dense marking grids: the
// last two characters, which for this department's numbering is the numeric
// tail.
func ShortRoll(roll string) string {
	r := []rune(roll)
	if len(r) <= 2 {
		return roll
	}
	return string(r[len(r)-2:])
}

// CSVFilename builds the per-class export name.
func CSVFilename(class, subject, start, end string) string {
	return fmt.Sprintf("attendance_%s_%s_%s_to_%s.csv", class, subject, start, end)
}

// ClassReportCSV encodes a (class, subject) range report. Every row carries
// the range metadata so the file is self-describing.
func ClassReportCSV(rows []Row, class, subject, start, end string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Roll No", "Name", "Total Lectures", "Attended", "% Attendance", "Class", "Subject", "From", "To"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			r.RollNo, r.Name,
			strconv.Itoa(r.Total), strconv.Itoa(r.Attended), FormatPercent(r.Percent),
			class, subject, start, end,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// AdminReportCSV encodes the bulk report, one row per student with the class
// column inline and no range metadata.
func AdminReportCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Roll No", "Name", "Class", "Total Lectures", "Attended", "% Attendance"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{r.RollNo, r.Name, r.Class, strconv.Itoa(r.Total), strconv.Itoa(r.Attended), FormatPercent(r.Percent)}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// SheetCSV is the admin layout plus range metadata columns; an empty subject
// filter is written out as "All".
func SheetCSV(rows []Row, start, end, subject string) ([]byte, error) {
	if subject == "" {
		subject = "All"
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Roll No", "Name", "Class", "Total Lectures", "Attended", "% Attendance", "From", "To", "Subject"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := []string{
			r.RollNo, r.Name, r.Class,
			strconv.Itoa(r.Total), strconv.Itoa(r.Attended), FormatPercent(r.Percent),
			start, end, subject,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
