package services

import (
	"database/sql"
	"log"
	"time"
)

// ReportUnmarkedClasses logs every class with enrolled students but no
// attendance marks for today, so the HOD can chase the gap before the day
// rolls over. Informational only; nothing is written.
func ReportUnmarkedClasses(db *sql.DB) error {
	today := time.Now().Format("2006-01-02")

	query := `
		SELECT s.class
		FROM students s
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance a
			WHERE a.class = s.class
			AND a.date = $1
		)
		GROUP BY s.class
		ORDER BY s.class
	`

	rows, err := db.Query(query, today)
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var class string
		if err := rows.Scan(&class); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}
		log.Printf("No attendance marked today for class %q", class)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if count == 0 {
		log.Println("All classes have attendance marked for today")
	}
	return nil
}
