package main

import (
	"flag"
	"log"

	"cardiowell/database"
	"cardiowell/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	numPatients := flag.Int("patients", utils.DefaultNumPatients, "Number of demo patients to create")
	withReports := flag.Bool("reports", true, "Generate an assessment report for each seeded patient")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedPatients(database.DB, *numPatients, *withReports); err != nil {
		log.Fatalf("Error seeding patients: %v", err)
	}

	log.Printf("Seeded %d demo patients", *numPatients)
}
