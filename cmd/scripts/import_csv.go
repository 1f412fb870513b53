package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	mongorepo "github.com/himtourism/homestay-portal/internal/repositories/mongodb"
	"github.com/himtourism/homestay-portal/internal/utils"
	"github.com/himtourism/homestay-portal/pkg/mongodb"
)

// Imports the legacy homestay register export into the directory, e.g.
//
//	go run ./cmd/scripts legacy-register.csv
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "homestay-portal"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	importer := utils.NewCSVImporter(mongorepo.NewPropertyRepository(db))
	result, err := importer.ImportProperties(context.Background(), csvFilePath)
	if err != nil {
		log.Fatalf("Failed to import: %v", err)
	}

	log.Printf("Import finished: %d rows, %d imported, %d skipped", result.TotalRows, result.Imported, result.Skipped)
	for _, e := range result.Errors {
		log.Printf("  %s", e)
	}
}
