package main

import (
	"fmt"
	"item-lab/repositories"
	"item-lab/services"
	"log"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" required:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// Seeds a handful of demo items through the full service path, validation
// included, so a fresh store has something to show in the viewer.
func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatalf("Database opening failed: %v", err)
	}
	defer db.Close()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		log.Fatalf("Failed to open bluge writer: %v", err)
	}
	defer blugeWriter.Close()

	service := services.NewItemService(
		logger,
		repositories.NewItemRepository(db, logger),
		repositories.NewItemIndex(blugeWriter, logger),
	)

	samples := []map[string]string{
		{"name": "Pen", "description": "Blue ink pen"},
		{"name": "Pencil", "description": "HB pencil"},
		{"name": "Notebook", "description": "A5 dotted notebook"},
		{"name": "Eraser", "description": "Soft white eraser"},
	}

	for _, sample := range samples {
		item, err := service.Create(sample)
		if err != nil {
			log.Fatalf("Seeding %q failed: %v", sample["name"], err)
		}
		fmt.Printf("Created %s (%s)\n", item.Name, item.ID)
	}
}
