package main

import (
	"context"
	"flag"
	"item-lab/domain"
	"item-lab/internal"
	"item-lab/repositories"
	"log"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	search := flag.String("search", "", "Full-text query over name and description")
	flag.Parse()

	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in read-only mode
	// Note: BypassLockGuard allows opening while the keeper holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewItemRepository(db, logger)

	// 3. Collect items: either the full collection or the search matches
	var items []domain.Item
	if *search == "" {
		items, err = repository.List()
		if err != nil {
			log.Fatalf("Listing failed: %v", err)
		}
	} else {
		items, err = searchItems(repository, config, *search)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
	}

	// 4. Render
	header := color.New(color.BgBlack, color.FgGreen).Render("item-lab viewer")
	color.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Description", "Created", "Updated"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(items, func(item domain.Item, _ int) []string {
		return []string{
			shortID(item.ID),
			item.Name,
			item.Description,
			item.CreatedAt.Format(time.RFC822),
			item.UpdatedAt.Format(time.RFC822),
		}
	}))
	table.Render()

	color.Green.Printf("%d item(s)\n", len(items))
}

// searchItems opens the bluge index directly as a reader: the viewer never
// takes the writer lock, so it can run next to the keeper.
func searchItems(repository *repositories.ItemRepository, config internal.Config, terms string) ([]domain.Item, error) {
	reader, err := bluge.OpenReader(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	ids, _, err := repositories.SearchIDs(context.Background(), reader, terms, config.SearchLimit)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		item, err := repository.GetByID(id)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, *item)
		}
	}
	return items, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
