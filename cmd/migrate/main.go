package main

import (
	"log"
	"os"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
)

// Applies schema.sql and the incremental migrations to the configured
// database. Safe to re-run; everything is idempotent.
func main() {
	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	content, err := os.ReadFile("schema.sql")
	if err != nil {
		log.Fatalf("Failed to read schema.sql: %v", err)
	}

	log.Println("Executing schema.sql...")
	if _, err := db.Exec(string(content)); err != nil {
		log.Fatalf("Error executing schema.sql: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	log.Println("Migration completed successfully")
}
