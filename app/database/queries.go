package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"jspm-attendance/app/models"
)

// StudentFilters represents filtering options for student report cohorts
type StudentFilters struct {
	Class  string
	Search string // matches roll_no or name
}

// GetStudentsWithFilters lists students matching the optional filters,
// ordered by roll number (lexicographic, as stored).
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	baseQuery := `SELECT id, roll_no, prn, name, class, semester, password_hash, created_at, updated_at
			  FROM students WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Class != "" {
		conditions = append(conditions, fmt.Sprintf("class = $%d", argIndex))
		args = append(args, filters.Class)
		argIndex++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(roll_no ILIKE $%d OR name ILIKE $%d)", argIndex, argIndex+1))
		args = append(args, "%"+filters.Search+"%", "%"+filters.Search+"%")
		argIndex += 2
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY roll_no"

	rows, err := db.Query(baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.RollNo, &s.PRN, &s.Name, &s.Class, &s.Semester, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

func GetStudentsByClass(db *sql.DB, class string) ([]*models.Student, error) {
	return GetStudentsWithFilters(db, StudentFilters{Class: class})
}

// GetStudentByLogin looks a student up by PRN first, then roll number.
func GetStudentByLogin(db *sql.DB, key string) (*models.Student, error) {
	s, err := getStudentBy(db, "prn", key)
	if err == sql.ErrNoRows {
		return getStudentBy(db, "roll_no", key)
	}
	return s, err
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	return getStudentBy(db, "id", id)
}

// GetStudentByRollOrPRN resolves the identifier HOD removal forms accept.
func GetStudentByRollOrPRN(db *sql.DB, key string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, roll_no, prn, name, class, semester, password_hash, created_at, updated_at
			  FROM students WHERE roll_no = $1 OR prn = $1`
	err := db.QueryRow(query, key).Scan(&s.ID, &s.RollNo, &s.PRN, &s.Name, &s.Class, &s.Semester, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func getStudentBy(db *sql.DB, column, value string) (*models.Student, error) {
	s := &models.Student{}
	query := fmt.Sprintf(`SELECT id, roll_no, prn, name, class, semester, password_hash, created_at, updated_at
			  FROM students WHERE %s = $1`, column)
	err := db.QueryRow(query, value).Scan(&s.ID, &s.RollNo, &s.PRN, &s.Name, &s.Class, &s.Semester, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpsertStudent inserts or updates by roll number. Returns true when a new
// row was created. The password hash is only applied on insert; imports must
// not reset existing credentials.
func UpsertStudent(db *sql.DB, roll, prn, name, class string, semester int, passwordHash string) (bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM students WHERE roll_no = $1`, roll).Scan(&id)
	if err == sql.ErrNoRows {
		_, err = db.Exec(`INSERT INTO students (roll_no, prn, name, class, semester, password_hash) VALUES ($1, $2, $3, $4, $5, $6)`,
			roll, prn, name, class, semester, passwordHash)
		return true, err
	}
	if err != nil {
		return false, err
	}

	_, err = db.Exec(`UPDATE students SET prn = $1, name = $2, class = $3, semester = $4, updated_at = NOW() WHERE id = $5`,
		prn, name, class, semester, id)
	return false, err
}

// DeleteStudent removes a student; attendance marks cascade.
func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	return err
}

// GetTeacherByPhone matches with internal spaces stripped, the same
// normalization login applies to its input.
func GetTeacherByPhone(db *sql.DB, phone string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT id, name, COALESCE(phone, ''), password_hash, created_at, updated_at
			  FROM teachers WHERE REPLACE(COALESCE(phone, ''), ' ', '') = $1`
	err := db.QueryRow(query, strings.ReplaceAll(phone, " ", "")).Scan(&t.ID, &t.Name, &t.Phone, &t.PasswordHash, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT id, name, COALESCE(phone, ''), password_hash, created_at, updated_at
			  FROM teachers WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&t.ID, &t.Name, &t.Phone, &t.PasswordHash, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTeacherByKey resolves import/update lookups: digits in the key are
// tried as a phone first, then the key as an exact name or phone.
func GetTeacherByKey(db *sql.DB, key string) (*models.Teacher, error) {
	digits := keepDigits(key)
	if digits != "" {
		if t, err := GetTeacherByPhone(db, digits); err == nil {
			return t, nil
		} else if err != sql.ErrNoRows {
			return nil, err
		}
	}

	t := &models.Teacher{}
	query := `SELECT id, name, COALESCE(phone, ''), password_hash, created_at, updated_at
			  FROM teachers WHERE name = $1 OR phone = $1`
	err := db.QueryRow(query, key).Scan(&t.ID, &t.Name, &t.Phone, &t.PasswordHash, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UpsertTeacher inserts or updates by phone/name match. Returns the teacher
// id and whether a new row was created.
func UpsertTeacher(db *sql.DB, name, phone, passwordHash string) (string, bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM teachers WHERE phone = $1 OR name = $2`, phone, name).Scan(&id)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`INSERT INTO teachers (name, phone, password_hash) VALUES ($1, $2, $3) RETURNING id`,
			name, phone, passwordHash).Scan(&id)
		return id, true, err
	}
	if err != nil {
		return "", false, err
	}

	_, err = db.Exec(`UPDATE teachers SET name = $1, phone = $2, password_hash = $3, updated_at = NOW() WHERE id = $4`,
		name, phone, passwordHash, id)
	return id, false, err
}

func DeleteTeacher(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
	return err
}

// ErrPhoneTaken marks a unique-index conflict on teachers.phone.
var ErrPhoneTaken = fmt.Errorf("phone number already in use")

func UpdateTeacherPhone(db *sql.DB, id, phone string) error {
	_, err := db.Exec(`UPDATE teachers SET phone = $1, updated_at = NOW() WHERE id = $2`, phone, id)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrPhoneTaken
	}
	return err
}

func UpdateTeacherPassword(db *sql.DB, id, passwordHash string) error {
	_, err := db.Exec(`UPDATE teachers SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	return err
}

func GetHODByPhone(db *sql.DB, phone string) (*models.HOD, error) {
	h := &models.HOD{}
	query := `SELECT id, name, phone, password_hash FROM hods WHERE REPLACE(phone, ' ', '') = $1`
	err := db.QueryRow(query, strings.ReplaceAll(phone, " ", "")).Scan(&h.ID, &h.Name, &h.Phone, &h.PasswordHash)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func GetAdminByEmail(db *sql.DB, email string) (*models.Admin, error) {
	a := &models.Admin{}
	query := `SELECT id, name, email, password_hash FROM admins WHERE email = $1`
	err := db.QueryRow(query, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateAdmin(db *sql.DB, name, email, passwordHash string) error {
	_, err := db.Exec(`INSERT INTO admins (name, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
		name, email, passwordHash)
	return err
}

func GetAssignmentsForTeacher(db *sql.DB, teacherID string) ([]*models.TeacherAssignment, error) {
	query := `SELECT id, teacher_id, subject, class FROM teacher_assignments
			  WHERE teacher_id = $1 ORDER BY class, subject`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assigns []*models.TeacherAssignment
	for rows.Next() {
		a := &models.TeacherAssignment{}
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.Subject, &a.Class); err != nil {
			return nil, err
		}
		assigns = append(assigns, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if assigns == nil {
		assigns = []*models.TeacherAssignment{}
	}
	return assigns, nil
}

// FirstAssignmentForTeacher is the fallback selection when a report request
// names no class/subject. sql.ErrNoRows means the teacher has none.
func FirstAssignmentForTeacher(db *sql.DB, teacherID string) (class, subject string, err error) {
	query := `SELECT class, subject FROM teacher_assignments
			  WHERE teacher_id = $1 ORDER BY class, subject LIMIT 1`
	err = db.QueryRow(query, teacherID).Scan(&class, &subject)
	return class, subject, err
}

// AddAssignment is a no-op for an existing (teacher, subject, class) triple.
func AddAssignment(db *sql.DB, teacherID, subject, class string) error {
	_, err := db.Exec(`INSERT INTO teacher_assignments (teacher_id, subject, class) VALUES ($1, $2, $3)
			  ON CONFLICT (teacher_id, subject, class) DO NOTHING`, teacherID, subject, class)
	return err
}

// AssignmentExists backs the capability check before teacher reports.
func AssignmentExists(db *sql.DB, teacherID, subject, class string) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM teacher_assignments WHERE teacher_id = $1 AND subject = $2 AND class = $3`,
		teacherID, subject, class).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetDistinctClasses(db *sql.DB) ([]string, error) {
	return queryStrings(db, `SELECT DISTINCT class FROM students ORDER BY class`)
}

func GetDistinctSubjects(db *sql.DB) ([]string, error) {
	return queryStrings(db, `SELECT DISTINCT subject FROM teacher_assignments ORDER BY subject`)
}

func queryStrings(db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if out == nil {
		out = []string{}
	}
	return out, nil
}
