package db

import (
	"fmt"
	"log"
	"os"

	"github.com/sentineldesk/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process-lifetime connection handle, initialized once by Connect
// and shared by every request. It is never torn down explicitly.
var DB *gorm.DB

// Connect initializes the database connection
func Connect() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		// Surfaces duplicate reference ids as gorm.ErrDuplicatedKey so the
		// incident service can regenerate and retry.
		TranslateError: true,
	})

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("✅ Database connected successfully")
}

// AutoMigrate runs database migrations
func AutoMigrate() {
	tables := []struct {
		name  string
		model any
	}{
		{"Incident", &models.Incident{}},
		{"Tool", &models.Tool{}},
		{"SystemLog", &models.SystemLog{}},
		{"ChatMessage", &models.ChatMessage{}},
	}

	for _, t := range tables {
		if err := DB.AutoMigrate(t.model); err != nil {
			log.Printf("%s migration failed: %v", t.name, err)
			return
		}
		log.Printf("✅ %s table migrated successfully", t.name)
	}

	log.Println("✅ All database migrations completed successfully")
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
