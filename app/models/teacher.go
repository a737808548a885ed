package models

import "time"

// Teacher logs in with their phone number.
type Teacher struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TeacherAssignment authorizes a teacher to mark attendance for one
// (subject, class) pair. Duplicate inserts for the same triple are no-ops.
type TeacherAssignment struct {
	ID        string `json:"id"`
	TeacherID string `json:"teacher_id"`
	Subject   string `json:"subject"`
	Class     string `json:"class"`
}

// HOD is the head of department account.
type HOD struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}

// Admin logs in with email.
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
