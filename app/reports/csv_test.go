package reports

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0.0, "0.0%"},
		{75.0, "75.0%"},
		{100.0, "100.0%"},
		{33.33, "33.33%"},
		{66.67, "66.67%"},
		{14.29, "14.29%"},
		{87.5, "87.5%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.p); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestShortRoll(t *testing.T) {
	tests := []struct {
		roll string
		want string
	}{
		{"", ""},
		{"7", "7"},
		{"07", "07"},
		{"22MCA007", "07"},
		{"A1", "A1"},
		{"MCA-3", "-3"},
	}

	for _, tt := range tests {
		if got := ShortRoll(tt.roll); got != tt.want {
			t.Errorf("ShortRoll(%q) = %q, want %q", tt.roll, got, tt.want)
		}
	}
}

func TestCSVFilename(t *testing.T) {
	got := CSVFilename("FYMCA A", "FBDA", "2025-03-01", "2025-03-07")
	want := "attendance_FYMCA A_FBDA_2025-03-01_to_2025-03-07.csv"
	if got != want {
		t.Errorf("CSVFilename() = %q, want %q", got, want)
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	recs, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	return recs
}

func TestClassReportCSV(t *testing.T) {
	rows := []Row{
		{RollNo: "01", Name: "Aarav", Total: 4, Attended: 3, Percent: 75.0},
		{RollNo: "02", Name: "Bhavana", Total: 0, Attended: 0, Percent: 0.0},
	}

	data, err := ClassReportCSV(rows, "FYMCA A", "FBDA", "2025-03-01", "2025-03-07")
	if err != nil {
		t.Fatalf("ClassReportCSV() error = %v", err)
	}

	recs := parseCSV(t, data)
	wantHeader := []string{"Roll No", "Name", "Total Lectures", "Attended", "% Attendance", "Class", "Subject", "From", "To"}
	if !reflect.DeepEqual(recs[0], wantHeader) {
		t.Errorf("header = %v, want %v", recs[0], wantHeader)
	}

	want1 := []string{"01", "Aarav", "4", "3", "75.0%", "FYMCA A", "FBDA", "2025-03-01", "2025-03-07"}
	if !reflect.DeepEqual(recs[1], want1) {
		t.Errorf("row 1 = %v, want %v", recs[1], want1)
	}
	// Zero marks render as "0.0%", never NaN or blank.
	if recs[2][4] != "0.0%" {
		t.Errorf("zero-marks percent = %q, want 0.0%%", recs[2][4])
	}
}

func TestAdminReportCSV(t *testing.T) {
	rows := []Row{{RollNo: "01", Name: "Aarav", Class: "FYMCA A", Total: 3, Attended: 1, Percent: 33.33}}

	data, err := AdminReportCSV(rows)
	if err != nil {
		t.Fatalf("AdminReportCSV() error = %v", err)
	}

	recs := parseCSV(t, data)
	wantHeader := []string{"Roll No", "Name", "Class", "Total Lectures", "Attended", "% Attendance"}
	if !reflect.DeepEqual(recs[0], wantHeader) {
		t.Errorf("header = %v, want %v", recs[0], wantHeader)
	}
	if recs[1][5] != "33.33%" {
		t.Errorf("percent = %q, want 33.33%%", recs[1][5])
	}
}

func TestSheetCSV(t *testing.T) {
	rows := []Row{{RollNo: "01", Name: "Aarav", Class: "FYMCA A", Total: 2, Attended: 2, Percent: 100.0}}

	data, err := SheetCSV(rows, "2025-03-01", "2025-03-07", "")
	if err != nil {
		t.Fatalf("SheetCSV() error = %v", err)
	}

	recs := parseCSV(t, data)
	wantHeader := []string{"Roll No", "Name", "Class", "Total Lectures", "Attended", "% Attendance", "From", "To", "Subject"}
	if !reflect.DeepEqual(recs[0], wantHeader) {
		t.Errorf("header = %v, want %v", recs[0], wantHeader)
	}
	if recs[1][8] != "All" {
		t.Errorf("empty subject filter rendered as %q, want All", recs[1][8])
	}
}
