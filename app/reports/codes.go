package reports

import "strings"

// subjectCodes maps known subject names to institutional course codes.
// Lookup is case-insensitive with whitespace normalized; subjects not in the
// table get an empty code. Static configuration, not derived from data.
var subjectCodes = map[string]string{
	"fbda":                   "230GDIM22",
	"bse":                    "230USYB01",
	"wireless communication": "230GETB38",
	"e-commerce":             "230VBCB14",
	"e commerce":             "230VBCB14",
	"ccf":                    "250GCAM65",
	"field project":          "231GCAM24",
	"project":                "231GCAM24",
}

// CourseCode returns the course code for a subject name, or "" when unknown.
func CourseCode(subject string) string {
	return subjectCodes[normalizeSubject(subject)]
}

func normalizeSubject(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
