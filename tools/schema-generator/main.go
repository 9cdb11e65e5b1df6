package main

import (
	"os"
	"path/filepath"

	"github.com/grovetools/deck/config"
	"github.com/grovetools/deck/logging"
)

func main() {
	log := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	outputDir := filepath.Join("schema", "definitions")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputPath := filepath.Join(outputDir, "deck.schema.json")
	if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	logging.NewPrettyLogger().Success("Generated deck schema at " + outputPath)
}
