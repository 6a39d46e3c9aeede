package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/lib/pq"

	"ProgramAdvisor/internal/config"
	"ProgramAdvisor/internal/extractor"
	"ProgramAdvisor/internal/infrastructure/fetcher"
	"ProgramAdvisor/internal/infrastructure/storage"
	"ProgramAdvisor/internal/logging"
	"ProgramAdvisor/internal/ports"
	"ProgramAdvisor/internal/usecase"
	"ProgramAdvisor/pkg/logger"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	cli := logger.New("programscraper")
	slogger := logging.New(cfg.Logging.Level)

	var archive ports.ScrapeArchive
	if dsn := cfg.Storage.ArchiveDSN; dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			cli.Fatalf("open archive database: %v", err)
		}
		defer db.Close()
		archive = storage.NewPostgresArchive(db)
	}

	pipeline := usecase.NewScrapePipeline(cfg.Scraper.Programs, usecase.ScrapeDeps{
		Fetcher:   fetcher.NewHTTPFetcher(nil),
		Extractor: extractor.New(),
		Store:     storage.NewFileStore(cfg.Storage.DataDir, slogger.With("component", "storage")),
		Archive:   archive,
		Logger:    slogger.With("component", "scraper"),
	})

	scraped, err := pipeline.Run(ctx)
	if err != nil {
		cli.Fatalf("scrape run: %v", err)
	}

	cli.Printf("scraped %d of %d programs into %s", scraped, len(cfg.Scraper.Programs), cfg.Storage.DataDir)
	if scraped == 0 {
		os.Exit(1)
	}
}
