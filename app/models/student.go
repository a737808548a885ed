package models

import "time"

// Student is one enrolled student. RollNo is the display key shown on every
// report and is unique across the department; PRN is the institutional id.
type Student struct {
	ID           string    `json:"id"`
	RollNo       string    `json:"roll_no"`
	PRN          string    `json:"prn"`
	Name         string    `json:"name"`
	Class        string    `json:"class"`
	Semester     int       `json:"semester"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
