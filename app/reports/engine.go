package reports

import (
	"math"
	"sort"

	"jspm-attendance/app/models"
)

// Defaulter and highlight cutoffs. Independent thresholds: the first drives
// alert lists, the second only the PDF row color.
const (
	DefaulterThreshold = 75.0
	HighlightThreshold = 40.0
)

// Counts is the raw tally for one student (or one subject) over a range.
type Counts struct {
	Total    int
	Attended int
}

// Filter narrows a mark query. Empty fields mean "all". Matching is exact
// and case-sensitive; subjects and classes are stored as entered.
type Filter struct {
	Subject string
	Class   string
}

// Store is the query contract the engine aggregates over. Implementations
// must treat the date bounds as inclusive ISO YYYY-MM-DD strings.
type Store interface {
	// CountsByStudent returns tallies grouped by student id in one query.
	// Students with no matching marks are simply absent from the map.
	CountsByStudent(studentIDs []string, f Filter, start, end string) (map[string]Counts, error)

	// SubjectCountsForStudent returns tallies grouped by subject for one
	// student over the range.
	SubjectCountsForStudent(studentID, start, end string) (map[string]Counts, error)

	// SubjectsForClass enumerates candidate subjects for a class from
	// teacher assignments, falling back to subjects observed in marks.
	SubjectsForClass(class string) ([]string, error)
}

// Row is one aggregated report line.
type Row struct {
	RollNo   string  `json:"roll_no"`
	Name     string  `json:"name"`
	Class    string  `json:"class"`
	Subject  string  `json:"subject,omitempty"`
	Code     string  `json:"code,omitempty"`
	Total    int     `json:"total"`
	Attended int     `json:"attended"`
	Percent  float64 `json:"percent"`
}

type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Percent computes attended/total as a percentage rounded half-up to two
// decimals. A student with no marks in range is 0.0, never NaN.
func Percent(attended, total int) float64 {
	if total == 0 {
		return 0.0
	}
	p := float64(attended) / float64(total) * 100
	return math.Floor(p*100+0.5) / 100
}

// IsDefaulter reports whether a percentage falls below the defaulter cutoff.
// Exactly 75.0 is not a defaulter.
func IsDefaulter(percent float64) bool {
	return percent < DefaulterThreshold
}

// Aggregate computes one row per cohort student over the inclusive range,
// ordered by roll number ascending (lexicographic on the stored string).
// An empty cohort yields an empty report, not an error; a store error aborts
// the whole report.
func (e *Engine) Aggregate(students []*models.Student, f Filter, start, end string) ([]Row, error) {
	rows := []Row{}
	if len(students) == 0 {
		return rows, nil
	}

	ids := make([]string, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}

	counts, err := e.store.CountsByStudent(ids, f, start, end)
	if err != nil {
		return nil, err
	}

	for _, s := range students {
		c := counts[s.ID]
		rows = append(rows, Row{
			RollNo:   s.RollNo,
			Name:     s.Name,
			Class:    s.Class,
			Subject:  f.Subject,
			Total:    c.Total,
			Attended: c.Attended,
			Percent:  Percent(c.Attended, c.Total),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].RollNo < rows[j].RollNo })
	return rows, nil
}

// SubjectBreakdown computes one row per candidate subject for a single
// student, annotated with course codes. Subjects with no marks in range
// appear with zero counts.
func (e *Engine) SubjectBreakdown(student *models.Student, start, end string) ([]Row, error) {
	subjects, err := e.store.SubjectsForClass(student.Class)
	if err != nil {
		return nil, err
	}

	counts, err := e.store.SubjectCountsForStudent(student.ID, start, end)
	if err != nil {
		return nil, err
	}

	rows := []Row{}
	for _, sub := range subjects {
		c := counts[sub]
		rows = append(rows, Row{
			RollNo:   student.RollNo,
			Name:     student.Name,
			Class:    student.Class,
			Subject:  sub,
			Code:     CourseCode(sub),
			Total:    c.Total,
			Attended: c.Attended,
			Percent:  Percent(c.Attended, c.Total),
		})
	}
	return rows, nil
}

// Defaulters filters rows to those strictly below the defaulter cutoff.
func Defaulters(rows []Row) []Row {
	out := []Row{}
	for _, r := range rows {
		if IsDefaulter(r.Percent) {
			out = append(out, r)
		}
	}
	return out
}
