package main

import (
	"flag"
	"log"

	"jspm-attendance/app/config"
	"jspm-attendance/app/database"
	"jspm-attendance/app/routes/auth"
)

func main() {
	name := flag.String("name", "", "Admin display name")
	email := flag.String("email", "", "Admin login email")
	password := flag.String("password", "", "Admin password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("Usage: add_admin -name <name> -email <email> -password <password>")
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := database.CreateAdmin(db, *name, *email, hash); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s (%s) created", *name, *email)
}
