package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"item-lab/domain"
	"item-lab/internal"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/shirou/gopsutil/process"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes the stores, starts the inspector and keeps the value log
// compacted until a signal arrives. Returning the error to main (instead of
// exiting inline) guarantees the deferred store closes always execute.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Stores (BadgerDB for records, Bluge for the search index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Inspector
	internal.StartDebugServer(db, config.DebugPort, "/inspect", itemMapper, statsProvider(db))
	log.Info("Keeper started",
		"inspect", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Periodic value-log GC. Badger only reclaims value-log space when
	// asked to, so a long-running keeper has to drive it.
	ticker := time.NewTicker(config.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down gracefully...")
			return nil
		case <-ticker.C:
			if err := db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				log.Warn("Value log GC failed", "error", err)
			}
		}
	}
}

// itemMapper decodes stored items so the inspector shows names instead of
// raw byte sizes.
func itemMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	var item domain.Item
	if err := json.Unmarshal(val, &item); err == nil && item.Name != "" {
		row.Detail = fmt.Sprintf("%s - %s", item.Name, item.Description)
	}
	return row
}

// statsProvider feeds the inspector header: store sizes plus process RSS
// and CPU via gopsutil.
func statsProvider(db *badger.DB) internal.StatsProvider {
	proc, _ := process.NewProcess(int32(os.Getpid()))

	return func() map[string]any {
		lsm, vlog := db.Size()
		stats := map[string]any{
			"Status":    "Keeper",
			"Time":      time.Now().Format(time.RFC822),
			"LSM Size":  lsm,
			"VLog Size": vlog,
		}
		if proc != nil {
			if mem, err := proc.MemoryInfo(); err == nil {
				stats["RSS MB"] = mem.RSS / 1024 / 1024
			}
			if cpu, err := proc.CPUPercent(); err == nil {
				stats["CPU %"] = fmt.Sprintf("%.1f", cpu)
			}
		}
		return stats
	}
}
