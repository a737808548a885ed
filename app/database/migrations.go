package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. Everything here
// is idempotent; schema.sql creates the base tables.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := addTeacherPhoneColumn(db); err != nil {
		return err
	}

	if err := ensureAttendanceUniqueMark(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Older deployments created teachers before phone became the login key.
func addTeacherPhoneColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'teachers'
				AND column_name = 'phone'
			) THEN
				ALTER TABLE teachers ADD COLUMN phone TEXT;
				RAISE NOTICE 'Added phone column to teachers';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for teachers.phone column: %v", err)
		return err
	}

	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_teachers_phone ON teachers(phone)`); err != nil {
		log.Printf("Failed to create unique index on teachers.phone: %v", err)
		return err
	}
	return nil
}

// The whole aggregation model relies on one mark per
// (student, subject, class, date); the upsert targets this constraint.
func ensureAttendanceUniqueMark(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_constraint
				WHERE conname = 'attendance_student_id_subject_class_date_key'
			) THEN
				ALTER TABLE attendance
				ADD CONSTRAINT attendance_student_id_subject_class_date_key
				UNIQUE (student_id, subject, class, date);
				RAISE NOTICE 'Added unique mark constraint to attendance';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to ensure attendance unique constraint: %v", err)
		return err
	}
	return nil
}
