package roster

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseStudentLines(t *testing.T) {
	text := strings.Join([]string{
		"01, 22MCA001, Aarav Sharma",
		"",
		"02 22MCA002 Bhavana",
		"03, 22MCA003, Mehta, Chirag", // extra commas fold into the name
		"just-one-field",
	}, "\n")

	lines, warnings := ParseStudentLines(text)

	want := []StudentLine{
		{Roll: "01", PRN: "22MCA001", Name: "Aarav Sharma"},
		{Roll: "02", PRN: "22MCA002", Name: "Bhavana"},
		{Roll: "03", PRN: "22MCA003", Name: "Mehta,Chirag"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ParseStudentLines() = %+v, want %+v", lines, want)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "Line 5") {
		t.Errorf("warnings = %v, want one for line 5", warnings)
	}
}

func TestParseStudentLinesWhitespaceName(t *testing.T) {
	lines, warnings := ParseStudentLines("07 22MCA007 Aarav Kumar Sharma")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(lines) != 1 || lines[0].Name != "Aarav Kumar Sharma" {
		t.Errorf("lines = %+v, want trailing fields joined into name", lines)
	}
}

func TestParseTeacherLines(t *testing.T) {
	text := strings.Join([]string{
		"Prof. Desai, 98765 43210, s3cret, FBDA, FYMCA A",
		"Prof. Rao, 9123456789, pw, BSE, FYMCA A, Div 2", // class keeps its comma
		"short, line",
	}, "\n")

	lines, warnings := ParseTeacherLines(text)

	want := []TeacherLine{
		{Name: "Prof. Desai", Phone: "98765 43210", Password: "s3cret", Subject: "FBDA", Class: "FYMCA A"},
		{Name: "Prof. Rao", Phone: "9123456789", Password: "pw", Subject: "BSE", Class: "FYMCA A,Div 2"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ParseTeacherLines() = %+v, want %+v", lines, want)
	}

	if len(warnings) != 1 || !strings.Contains(warnings[0], "Line 3") {
		t.Errorf("warnings = %v, want one for line 3", warnings)
	}
}

func TestParseAssignmentLines(t *testing.T) {
	text := strings.Join([]string{
		"FBDA, 9876543210",
		"Wireless Communication, Prof. Desai",
		"nocomma",
	}, "\n")

	lines, warnings := ParseAssignmentLines(text)

	want := []AssignmentLine{
		{Subject: "FBDA", TeacherKey: "9876543210"},
		{Subject: "Wireless Communication", TeacherKey: "Prof. Desai"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ParseAssignmentLines() = %+v, want %+v", lines, want)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one", warnings)
	}
}
