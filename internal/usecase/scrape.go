package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ProgramAdvisor/internal/config"
	"ProgramAdvisor/internal/ports"
)

// ScrapeDeps wires all driven adapters into the scrape pipeline.
type ScrapeDeps struct {
	Fetcher   ports.PageFetcher
	Extractor ports.RecordExtractor
	Store     ports.RecordStore
	Archive   ports.ScrapeArchive
	Logger    *slog.Logger
}

// ScrapePipeline fetches each configured program page, extracts a
// record, and persists it. A failing program is logged and skipped;
// it never aborts the rest of the batch.
type ScrapePipeline struct {
	programs  []config.ProgramConfig
	fetcher   ports.PageFetcher
	extractor ports.RecordExtractor
	store     ports.RecordStore
	archive   ports.ScrapeArchive
	logger    *slog.Logger
}

// NewScrapePipeline constructs the pipeline for the configured programs.
func NewScrapePipeline(programs []config.ProgramConfig, deps ScrapeDeps) *ScrapePipeline {
	return &ScrapePipeline{
		programs:  programs,
		fetcher:   deps.Fetcher,
		extractor: deps.Extractor,
		store:     deps.Store,
		archive:   deps.Archive,
		logger:    deps.Logger,
	}
}

// Run scrapes every configured program once and reports how many
// records were persisted.
func (p *ScrapePipeline) Run(ctx context.Context) (int, error) {
	if p.fetcher == nil || p.extractor == nil || p.store == nil {
		return 0, fmt.Errorf("scrape pipeline is not fully wired")
	}

	scraped := 0
	for _, program := range p.programs {
		if err := p.scrapeOne(ctx, program); err != nil {
			p.logger.Warn("scrape failed", "slug", program.Slug, "url", program.URL, "error", err)
			continue
		}
		scraped++
	}

	p.logger.Info("scrape run finished", "scraped", scraped, "configured", len(p.programs))
	return scraped, nil
}

func (p *ScrapePipeline) scrapeOne(ctx context.Context, program config.ProgramConfig) error {
	page, err := p.fetcher.FetchPage(ctx, program.URL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	record, err := p.extractor.Extract(page, program.URL)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if record.Slug != program.Slug {
		p.logger.Warn("page slug differs from configured slug",
			"configured", program.Slug, "extracted", record.Slug)
	}

	key, err := p.store.Save(record)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	p.logger.Info("record saved", "key", key, "title", record.Title)

	if p.archive != nil {
		if err := p.archive.SaveScrape(ctx, record); err != nil {
			// Archiving is best-effort; the file record already exists.
			p.logger.Warn("archive scrape failed", "slug", record.Slug, "error", err)
		}
	}

	return nil
}
