package ports

import (
	"context"
	"time"

	"ProgramAdvisor/internal/domain"
)

// PageFetcher downloads raw program pages from the university site.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) ([]byte, error)
}

// RecordExtractor turns a fetched HTML document into a normalized record.
type RecordExtractor interface {
	Extract(page []byte, sourceURL string) (domain.ProgramRecord, error)
}

// RecordStore persists normalized program records and loads them back.
// LoadAll skips malformed files and returns only the records that parsed.
type RecordStore interface {
	Save(record domain.ProgramRecord) (string, error)
	LoadAll() (map[string]domain.ProgramRecord, error)
}

// ScrapeArchive keeps a history of successful scrape runs.
type ScrapeArchive interface {
	SaveScrape(ctx context.Context, record domain.ProgramRecord) error
}

// Messenger delivers outbound chat messages.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendKeyboard(ctx context.Context, chatID int64, text string, buttons []string) error
	Reply(ctx context.Context, chatID int64, messageID int, text string) error
}

// Scheduler controls when the periodic rescrape executes.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
