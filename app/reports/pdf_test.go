package reports

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClassReportPDF(t *testing.T) {
	rows := []Row{
		{RollNo: "01", Name: "Aarav", Total: 4, Attended: 3, Percent: 75.0},
		{RollNo: "02", Name: "Bhavana", Total: 3, Attended: 1, Percent: 33.33},
	}

	data, err := ClassReportPDF(rows, "FYMCA A", "FBDA", "2025-03-01", "2025-03-07")
	if err != nil {
		t.Fatalf("ClassReportPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestClassReportPDFManyRows(t *testing.T) {
	// Enough rows to force a page break.
	var rows []Row
	for i := 0; i < 120; i++ {
		rows = append(rows, Row{
			RollNo:   fmt.Sprintf("%03d", i+1),
			Name:     "A Student With A Rather Long Display Name Indeed",
			Total:    10,
			Attended: i % 11,
			Percent:  Percent(i%11, 10),
		})
	}

	data, err := ClassReportPDF(rows, "FYMCA A", "FBDA", "2025-02-14", "2025-03-15")
	if err != nil {
		t.Fatalf("ClassReportPDF() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PDF output")
	}
}

func TestClassReportPDFEmpty(t *testing.T) {
	data, err := ClassReportPDF(nil, "FYMCA A", "FBDA", "2025-03-01", "2025-03-07")
	if err != nil {
		t.Fatalf("ClassReportPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("empty report still needs a valid header page")
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii untouched", "Aarav", 36, "Aarav"},
		{"long ascii cut", strings.Repeat("a", 40), 36, strings.Repeat("a", 36)},
		{"multibyte cut on rune boundary", strings.Repeat("अ", 40), 3, "अअअ"},
		{"exact length untouched", "अआइ", 3, "अआइ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestClassReportPDFMultibyteNames(t *testing.T) {
	rows := []Row{
		{RollNo: "01", Name: strings.Repeat("आदित्य वर्मा ", 5), Total: 4, Attended: 3, Percent: 75.0},
	}

	data, err := ClassReportPDF(rows, "FYMCA A", "FBDA", "2025-03-01", "2025-03-07")
	if err != nil {
		t.Fatalf("ClassReportPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestDefaultersPDF(t *testing.T) {
	rows := []Row{
		{RollNo: "01", Name: "Aarav", Class: "FYMCA A", Total: 4, Attended: 3, Percent: 75.0},
		{RollNo: "02", Name: "Bhavana", Class: "FYMCA A", Total: 3, Attended: 1, Percent: 33.33},
	}

	data, err := DefaultersPDF(rows, "Attendance Report (Defaulters <75%)")
	if err != nil {
		t.Fatalf("DefaultersPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}
