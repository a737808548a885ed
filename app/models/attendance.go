package models

// AttendanceStatus is a single Present/Absent outcome.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
)

// AttendanceMark records one lecture outcome for one student. At most one
// mark exists per (student, subject, class, date); re-marking overwrites.
// Date is an ISO YYYY-MM-DD string end to end so that string comparisons
// and the DATE column agree on ordering.
type AttendanceMark struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	TeacherID string           `json:"teacher_id,omitempty"`
	Subject   string           `json:"subject"`
	Class     string           `json:"class"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
}

// User is the session identity set by the auth middleware, whatever table
// the account came from.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Class string `json:"class,omitempty"` // students only
}

// Roles accepted at login.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleHOD     = "hod"
	RoleAdmin   = "admin"
)
