package teacher

import (
	"os"
	"strings"
	"testing"
)

// The report page's range form and export links must carry the (class,
// subject) being viewed. Requests without cls/subject fall back to the
// teacher's first assignment, which would silently switch the report for a
// teacher holding more than one.
func TestReportTemplateCarriesSelection(t *testing.T) {
	raw, err := os.ReadFile("../../templates/teacher/report.html")
	if err != nil {
		t.Fatalf("reading report template: %v", err)
	}
	html := string(raw)

	for _, want := range []string{
		`name="cls" value="{{.Class}}"`,
		`name="subject" value="{{.Subject}}"`,
		`/teacher/export/csv?cls={{.Class}}&subject={{.Subject}}`,
		`/teacher/export/pdf?cls={{.Class}}&subject={{.Subject}}`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report template missing %q", want)
		}
	}
}

func TestMarkTemplateCarriesSelection(t *testing.T) {
	raw, err := os.ReadFile("../../templates/teacher/mark.html")
	if err != nil {
		t.Fatalf("reading mark template: %v", err)
	}
	html := string(raw)

	for _, want := range []string{
		`name="cls" value="{{.Class}}"`,
		`name="subject" value="{{.Subject}}"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("mark template missing %q", want)
		}
	}
}
