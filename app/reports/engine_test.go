package reports

import (
	"errors"
	"reflect"
	"testing"

	"jspm-attendance/app/models"
)

// fakeStore serves canned tallies and records the filter it was asked for.
type fakeStore struct {
	counts        map[string]Counts
	subjectCounts map[string]Counts
	subjects      []string
	err           error

	gotFilter Filter
	gotStart  string
	gotEnd    string
}

func (f *fakeStore) CountsByStudent(ids []string, flt Filter, start, end string) (map[string]Counts, error) {
	f.gotFilter, f.gotStart, f.gotEnd = flt, start, end
	return f.counts, f.err
}

func (f *fakeStore) SubjectCountsForStudent(id, start, end string) (map[string]Counts, error) {
	f.gotStart, f.gotEnd = start, end
	return f.subjectCounts, f.err
}

func (f *fakeStore) SubjectsForClass(class string) ([]string, error) {
	return f.subjects, f.err
}

func student(id, roll, name, class string) *models.Student {
	return &models.Student{ID: id, RollNo: roll, Name: name, Class: class}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		attended int
		total    int
		want     float64
	}{
		{"no lectures is zero not NaN", 0, 0, 0.0},
		{"three of four", 3, 4, 75.0},
		{"one of three rounds half up", 1, 3, 33.33},
		{"two of three rounds half up", 2, 3, 66.67},
		{"full attendance", 5, 5, 100.0},
		{"one of seven", 1, 7, 14.29},
		{"one of six", 1, 6, 16.67},
		{"none attended", 0, 10, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.attended, tt.total); got != tt.want {
				t.Errorf("Percent(%d, %d) = %v, want %v", tt.attended, tt.total, got, tt.want)
			}
		})
	}
}

func TestPercentStaysInRange(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for attended := 0; attended <= total; attended++ {
			p := Percent(attended, total)
			if p < 0 || p > 100 {
				t.Fatalf("Percent(%d, %d) = %v out of [0, 100]", attended, total, p)
			}
		}
	}
}

func TestPercentMonotonicInAttended(t *testing.T) {
	for total := 1; total <= 40; total++ {
		prev := Percent(0, total)
		for attended := 1; attended <= total; attended++ {
			p := Percent(attended, total)
			if p <= prev {
				t.Fatalf("Percent(%d, %d) = %v not greater than Percent(%d, %d) = %v", attended, total, p, attended-1, total, prev)
			}
			prev = p
		}
	}
}

func TestIsDefaulter(t *testing.T) {
	if IsDefaulter(75.0) {
		t.Error("exactly 75.0 must not be a defaulter")
	}
	if !IsDefaulter(74.99) {
		t.Error("74.99 must be a defaulter")
	}
	if IsDefaulter(100.0) {
		t.Error("100.0 must not be a defaulter")
	}
	if !IsDefaulter(0.0) {
		t.Error("0.0 must be a defaulter")
	}
}

func TestAggregate(t *testing.T) {
	store := &fakeStore{counts: map[string]Counts{
		"id-a": {Total: 4, Attended: 3},
		"id-b": {Total: 3, Attended: 1},
	}}
	engine := NewEngine(store)

	cohort := []*models.Student{
		student("id-b", "02", "Bhavana", "FYMCA A"),
		student("id-a", "01", "Aarav", "FYMCA A"),
		student("id-c", "03", "Chirag", "FYMCA A"),
	}

	rows, err := engine.Aggregate(cohort, Filter{Subject: "FBDA"}, "2025-03-01", "2025-03-07")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Aggregate() returned %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].RollNo > rows[i].RollNo {
			t.Errorf("rows out of order: %s before %s", rows[i-1].RollNo, rows[i].RollNo)
		}
	}

	if rows[0].Percent != 75.0 || rows[0].Attended != 3 || rows[0].Total != 4 {
		t.Errorf("row 01 = %+v, want 3/4 at 75.0", rows[0])
	}
	if rows[1].Percent != 33.33 {
		t.Errorf("row 02 percent = %v, want 33.33", rows[1].Percent)
	}
	// No marks at all in range: zero counts, 0.0 percent.
	if rows[2].Total != 0 || rows[2].Attended != 0 || rows[2].Percent != 0.0 {
		t.Errorf("row 03 = %+v, want 0/0 at 0.0", rows[2])
	}

	if rows[0].Subject != "FBDA" {
		t.Errorf("row subject = %q, want FBDA", rows[0].Subject)
	}
	if store.gotStart != "2025-03-01" || store.gotEnd != "2025-03-07" {
		t.Errorf("store got range (%s, %s)", store.gotStart, store.gotEnd)
	}
}

func TestAggregateEmptyCohort(t *testing.T) {
	engine := NewEngine(&fakeStore{err: errors.New("should not be called")})

	rows, err := engine.Aggregate(nil, Filter{}, "2025-03-01", "2025-03-07")
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("Aggregate() = %v, want empty non-nil slice", rows)
	}
}

func TestAggregateStoreError(t *testing.T) {
	engine := NewEngine(&fakeStore{err: errors.New("db down")})

	_, err := engine.Aggregate([]*models.Student{student("id", "01", "A", "X")}, Filter{}, "2025-03-01", "2025-03-07")
	if err == nil {
		t.Fatal("Aggregate() expected error, got nil")
	}
}

func TestSubjectBreakdown(t *testing.T) {
	store := &fakeStore{
		subjects: []string{"FBDA", "BSE", "CCF"},
		subjectCounts: map[string]Counts{
			"FBDA": {Total: 10, Attended: 8},
			"BSE":  {Total: 6, Attended: 1},
		},
	}
	engine := NewEngine(store)

	rows, err := engine.SubjectBreakdown(student("id-a", "01", "Aarav", "FYMCA A"), "2025-02-14", "2025-03-15")
	if err != nil {
		t.Fatalf("SubjectBreakdown() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want one per candidate subject", len(rows))
	}
	if rows[0].Subject != "FBDA" || rows[0].Percent != 80.0 || rows[0].Code != "230GDIM22" {
		t.Errorf("FBDA row = %+v", rows[0])
	}
	if rows[1].Percent != 16.67 {
		t.Errorf("BSE percent = %v, want 16.67", rows[1].Percent)
	}
	// Subject with zero marks in range still appears.
	if rows[2].Subject != "CCF" || rows[2].Total != 0 || rows[2].Percent != 0.0 {
		t.Errorf("CCF row = %+v, want zero counts", rows[2])
	}
}

func TestDefaulters(t *testing.T) {
	rows := []Row{
		{RollNo: "01", Percent: 75.0},
		{RollNo: "02", Percent: 74.99},
		{RollNo: "03", Percent: 0.0},
		{RollNo: "04", Percent: 100.0},
	}

	got := Defaulters(rows)
	want := []string{"02", "03"}
	var gotRolls []string
	for _, r := range got {
		gotRolls = append(gotRolls, r.RollNo)
	}
	if !reflect.DeepEqual(gotRolls, want) {
		t.Errorf("Defaulters() rolls = %v, want %v", gotRolls, want)
	}
}

func TestCourseCode(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"FBDA", "230GDIM22"},
		{"fbda", "230GDIM22"},
		{"  Wireless Communication  ", "230GETB38"},
		{"E-Commerce", "230VBCB14"},
		{"E Commerce", "230VBCB14"},
		{"Field Project", "231GCAM24"},
		{"Underwater Basket Weaving", ""},
	}

	for _, tt := range tests {
		if got := CourseCode(tt.subject); got != tt.want {
			t.Errorf("CourseCode(%q) = %q, want %q", tt.subject, got, tt.want)
		}
	}
}
