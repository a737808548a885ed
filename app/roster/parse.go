// Package roster parses pasted or uploaded roster text into import records.
// Bad lines become warnings, never abort a whole import.
package roster

import (
	"fmt"
	"strings"
)

// StudentLine is one "roll, prn, name" record. The name may itself contain
// commas; everything after the second field belongs to it.
type StudentLine struct {
	Roll string
	PRN  string
	Name string
}

// TeacherLine is one "name, phone, password, subject, class" record. The
// class label may contain commas. A teacher appearing on multiple lines
// collects multiple assignments.
type TeacherLine struct {
	Name     string
	Phone    string
	Password string
	Subject  string
	Class    string
}

// AssignmentLine is one "subject, teacher_phone_or_name" record.
type AssignmentLine struct {
	Subject    string
	TeacherKey string
}

// ParseStudentLines accepts comma-separated or whitespace-separated lines.
// Blank lines are skipped silently; malformed ones produce a warning.
func ParseStudentLines(text string) ([]StudentLine, []string) {
	var out []StudentLine
	var warnings []string

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		rec, ok := parseStudentLine(line)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("Line %d: invalid format. Expect roll, prn, name.", i+1))
			continue
		}
		out = append(out, rec)
	}
	return out, warnings
}

func parseStudentLine(line string) (StudentLine, bool) {
	if strings.Contains(line, ",") {
		parts := splitTrimmed(line, ",")
		if len(parts) < 3 {
			return StudentLine{}, false
		}
		return StudentLine{Roll: parts[0], PRN: parts[1], Name: strings.Join(parts[2:], ",")}, true
	}

	parts := strings.Fields(line)
	if len(parts) < 3 {
		return StudentLine{}, false
	}
	return StudentLine{Roll: parts[0], PRN: parts[1], Name: strings.Join(parts[2:], " ")}, true
}

// ParseTeacherLines parses "name, phone, password, subject, class" lines.
func ParseTeacherLines(text string) ([]TeacherLine, []string) {
	var out []TeacherLine
	var warnings []string

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 5 {
			warnings = append(warnings, fmt.Sprintf("Line %d: expected name, phone, password, subject, class", i+1))
			continue
		}

		out = append(out, TeacherLine{
			Name:     parts[0],
			Phone:    parts[1],
			Password: parts[2],
			Subject:  parts[3],
			Class:    strings.Join(parts[4:], ","),
		})
	}
	return out, warnings
}

// ParseAssignmentLines parses "subject, teacher_phone_or_name" lines.
func ParseAssignmentLines(text string) ([]AssignmentLine, []string) {
	var out []AssignmentLine
	var warnings []string

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := splitTrimmed(line, ",")
		if len(parts) < 2 {
			warnings = append(warnings, fmt.Sprintf("Assignment line %d: expected \"subject, teacher_phone_or_name\"", i+1))
			continue
		}

		out = append(out, AssignmentLine{Subject: parts[0], TeacherKey: strings.Join(parts[1:], ",")})
	}
	return out, warnings
}

// splitTrimmed splits and drops empty fields.
func splitTrimmed(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
