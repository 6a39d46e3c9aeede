package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"ProgramAdvisor/internal/domain"
	"ProgramAdvisor/internal/ports"
)

// PostgresArchive records the latest successful scrape per program.
type PostgresArchive struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ScrapeArchive = (*PostgresArchive)(nil)

// NewPostgresArchive wires a sql.DB implementation.
func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveScrape upserts the scrape snapshot keyed by program slug.
func (a *PostgresArchive) SaveScrape(ctx context.Context, record domain.ProgramRecord) error {
	if a.db == nil {
		return nil
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", record.Slug, err)
	}

	query, args, err := a.builder.
		Insert("program_scrapes").
		Columns("slug", "title", "source_url", "payload", "scraped_at").
		Values(record.Slug, record.Title, record.SourceURL, payload, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (slug) DO UPDATE
                SET title = EXCLUDED.title,
                    source_url = EXCLUDED.source_url,
                    payload = EXCLUDED.payload,
                    scraped_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert scrape %s: %w", record.Slug, err)
	}

	return nil
}
