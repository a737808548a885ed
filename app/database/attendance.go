package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"jspm-attendance/app/models"
	"jspm-attendance/app/reports"
)

// UpsertAttendanceMark saves one mark; a later mark for the same
// (student, subject, class, date) overwrites the earlier one.
func UpsertAttendanceMark(db *sql.DB, mark *models.AttendanceMark) error {
	query := `INSERT INTO attendance (student_id, teacher_id, subject, class, date, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (student_id, subject, class, date)
			  DO UPDATE SET status = EXCLUDED.status, teacher_id = EXCLUDED.teacher_id, updated_at = NOW()`
	_, err := db.Exec(query, mark.StudentID, mark.TeacherID, mark.Subject, mark.Class, mark.Date, mark.Status)
	return err
}

// GetStatusMap returns existing marks for a class lecture, keyed by student
// id, so the marking form can pre-select them.
func GetStatusMap(db *sql.DB, class, subject, date string) (map[string]models.AttendanceStatus, error) {
	query := `SELECT student_id, status FROM attendance WHERE class = $1 AND subject = $2 AND date = $3`
	rows, err := db.Query(query, class, subject, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statusMap := make(map[string]models.AttendanceStatus)
	for rows.Next() {
		var studentID string
		var status models.AttendanceStatus
		if err := rows.Scan(&studentID, &status); err != nil {
			return nil, err
		}
		statusMap[studentID] = status
	}
	return statusMap, rows.Err()
}

// GetMarksForStudent lists a student's marks in range, newest first.
func GetMarksForStudent(db *sql.DB, studentID, start, end string) ([]*models.AttendanceMark, error) {
	query := `SELECT id, student_id, COALESCE(teacher_id::text, ''), subject, class, to_char(date, 'YYYY-MM-DD'), status
			  FROM attendance
			  WHERE student_id = $1 AND date BETWEEN $2 AND $3
			  ORDER BY date DESC`
	rows, err := db.Query(query, studentID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.AttendanceMark
	for rows.Next() {
		m := &models.AttendanceMark{}
		if err := rows.Scan(&m.ID, &m.StudentID, &m.TeacherID, &m.Subject, &m.Class, &m.Date, &m.Status); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if marks == nil {
		marks = []*models.AttendanceMark{}
	}
	return marks, nil
}

// AttendanceStore adapts the attendance tables to the reporting engine's
// query contract. All reads; isolation is whatever the database gives a
// plain statement, which is fine for informational reports.
type AttendanceStore struct {
	db *sql.DB
}

func NewAttendanceStore(db *sql.DB) *AttendanceStore {
	return &AttendanceStore{db: db}
}

// CountsByStudent tallies marks for the whole cohort in a single grouped
// query instead of one query per student.
func (s *AttendanceStore) CountsByStudent(studentIDs []string, f reports.Filter, start, end string) (map[string]reports.Counts, error) {
	baseQuery := `SELECT student_id,
			  COUNT(*),
			  COUNT(*) FILTER (WHERE status = 'Present')
			  FROM attendance
			  WHERE student_id = ANY($1) AND date BETWEEN $2 AND $3`

	args := []interface{}{pq.Array(studentIDs), start, end}
	argIndex := 4

	var conditions []string
	if f.Subject != "" {
		conditions = append(conditions, fmt.Sprintf("subject = $%d", argIndex))
		args = append(args, f.Subject)
		argIndex++
	}
	if f.Class != "" {
		conditions = append(conditions, fmt.Sprintf("class = $%d", argIndex))
		args = append(args, f.Class)
		argIndex++
	}
	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}
	baseQuery += " GROUP BY student_id"

	rows, err := s.db.Query(baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]reports.Counts)
	for rows.Next() {
		var id string
		var c reports.Counts
		if err := rows.Scan(&id, &c.Total, &c.Attended); err != nil {
			return nil, err
		}
		counts[id] = c
	}
	return counts, rows.Err()
}

// SubjectCountsForStudent tallies one student's marks grouped by subject.
func (s *AttendanceStore) SubjectCountsForStudent(studentID, start, end string) (map[string]reports.Counts, error) {
	query := `SELECT subject,
			  COUNT(*),
			  COUNT(*) FILTER (WHERE status = 'Present')
			  FROM attendance
			  WHERE student_id = $1 AND date BETWEEN $2 AND $3
			  GROUP BY subject`
	rows, err := s.db.Query(query, studentID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]reports.Counts)
	for rows.Next() {
		var subject string
		var c reports.Counts
		if err := rows.Scan(&subject, &c.Total, &c.Attended); err != nil {
			return nil, err
		}
		counts[subject] = c
	}
	return counts, rows.Err()
}

// SubjectsForClass enumerates subjects from teacher assignments, falling
// back to subjects observed directly in marks. Assignment data can lag
// behind attendance that teachers have already recorded.
func (s *AttendanceStore) SubjectsForClass(class string) ([]string, error) {
	subjects, err := queryStrings(s.db, `SELECT DISTINCT subject FROM teacher_assignments WHERE class = $1 ORDER BY subject`, class)
	if err != nil {
		return nil, err
	}
	if len(subjects) > 0 {
		return subjects, nil
	}
	return queryStrings(s.db, `SELECT DISTINCT subject FROM attendance WHERE class = $1 ORDER BY subject`, class)
}

// DefaulterSummary aggregates all marks in range by (roll_no, name, class)
// across subjects, sorted by that tuple. Callers filter with
// reports.Defaulters; this returns every student with marks.
func DefaulterSummary(db *sql.DB, start, end string) ([]reports.Row, error) {
	query := `SELECT s.roll_no, s.name, s.class,
			  COUNT(*),
			  COUNT(*) FILTER (WHERE a.status = 'Present')
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  WHERE a.date BETWEEN $1 AND $2
			  GROUP BY s.roll_no, s.name, s.class
			  ORDER BY s.roll_no, s.name, s.class`
	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []reports.Row
	for rows.Next() {
		var r reports.Row
		if err := rows.Scan(&r.RollNo, &r.Name, &r.Class, &r.Total, &r.Attended); err != nil {
			return nil, err
		}
		r.Percent = reports.Percent(r.Attended, r.Total)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if out == nil {
		out = []reports.Row{}
	}
	return out, nil
}
