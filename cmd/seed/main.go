package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sentineldesk/backend/internal/db"
	"github.com/sentineldesk/backend/internal/models"
)

// SeedData represents the structure of the fixture JSON file
type SeedData struct {
	Incidents []models.Incident    `json:"incidents"`
	Tools     []models.Tool        `json:"tools"`
	Logs      []models.SystemLog   `json:"logs"`
	Messages  []models.ChatMessage `json:"messages"`
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Connect to database
	db.Connect()

	// Run migrations first
	log.Println("Running database migrations...")
	db.AutoMigrate()

	log.Println("Seeding database with sample data...")
	if err := seed("data/seed-data.json"); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	log.Println("✅ Database seeding completed successfully!")
}

func seed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	for i := range data.Incidents {
		incident := &data.Incidents[i]
		if incident.ReferenceID == "" {
			incident.ReferenceID = models.GenerateReferenceID()
		}
		if incident.Status == "" {
			incident.Status = models.StatusOpen
		}
		if !incident.Severity.IsValid() {
			log.Fatalf("Incident %s has unknown severity %q", incident.ReferenceID, incident.Severity)
		}
		if !incident.Status.IsValid() {
			log.Fatalf("Incident %s has unknown status %q", incident.ReferenceID, incident.Status)
		}
		// Re-running the seed should not duplicate incidents
		var count int64
		db.DB.Model(&models.Incident{}).Where("reference_id = ?", incident.ReferenceID).Count(&count)
		if count > 0 {
			log.Printf("Incident %s already exists, skipping", incident.ReferenceID)
			continue
		}
		if err := db.DB.Create(incident).Error; err != nil {
			return err
		}
		log.Printf("Created incident %s", incident.ReferenceID)
	}

	for i := range data.Tools {
		if err := db.DB.Create(&data.Tools[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d tools", len(data.Tools))

	for i := range data.Logs {
		if !data.Logs[i].Severity.IsValid() {
			log.Fatalf("System log %d has unknown severity %q", i, data.Logs[i].Severity)
		}
		if err := db.DB.Create(&data.Logs[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d system logs", len(data.Logs))

	for i := range data.Messages {
		if err := db.DB.Create(&data.Messages[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Created %d chat messages", len(data.Messages))

	return nil
}
