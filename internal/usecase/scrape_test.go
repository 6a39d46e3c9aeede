package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ProgramAdvisor/internal/config"
	"ProgramAdvisor/internal/domain"
	"ProgramAdvisor/internal/logging"
)

type fakeFetcher struct {
	pages map[string][]byte
}

func (f *fakeFetcher) FetchPage(_ context.Context, url string) ([]byte, error) {
	page, ok := f.pages[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return page, nil
}

type fakeExtractor struct{}

func (fakeExtractor) Extract(page []byte, sourceURL string) (domain.ProgramRecord, error) {
	if len(page) == 0 {
		return domain.ProgramRecord{}, errors.New("no data island")
	}
	return domain.ProgramRecord{Slug: string(page), SourceURL: sourceURL}, nil
}

type fakeStore struct {
	saved []domain.ProgramRecord
}

func (s *fakeStore) Save(record domain.ProgramRecord) (string, error) {
	s.saved = append(s.saved, record)
	return domain.RecordKey(record.Slug), nil
}

func (s *fakeStore) LoadAll() (map[string]domain.ProgramRecord, error) {
	return nil, nil
}

type fakeArchive struct {
	slugs []string
	err   error
}

func (a *fakeArchive) SaveScrape(_ context.Context, record domain.ProgramRecord) error {
	if a.err != nil {
		return a.err
	}
	a.slugs = append(a.slugs, record.Slug)
	return nil
}

func TestScrapePipelineSkipsFailingPrograms(t *testing.T) {
	t.Parallel()

	programs := []config.ProgramConfig{
		{Slug: "ai", URL: "https://example.org/ai"},
		{Slug: "ai_product", URL: "https://example.org/ai_product"},
	}
	store := &fakeStore{}
	pipeline := NewScrapePipeline(programs, ScrapeDeps{
		Fetcher:   &fakeFetcher{pages: map[string][]byte{"https://example.org/ai": []byte("ai")}},
		Extractor: fakeExtractor{},
		Store:     store,
		Logger:    logging.New("error"),
	})

	scraped, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, scraped)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "ai", store.saved[0].Slug)
}

func TestScrapePipelineArchiveFailureIsSoft(t *testing.T) {
	t.Parallel()

	programs := []config.ProgramConfig{{Slug: "ai", URL: "https://example.org/ai"}}
	store := &fakeStore{}
	pipeline := NewScrapePipeline(programs, ScrapeDeps{
		Fetcher:   &fakeFetcher{pages: map[string][]byte{"https://example.org/ai": []byte("ai")}},
		Extractor: fakeExtractor{},
		Store:     store,
		Archive:   &fakeArchive{err: errors.New("database down")},
		Logger:    logging.New("error"),
	})

	scraped, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, scraped)
	assert.Len(t, store.saved, 1)
}

func TestScrapePipelineArchivesSuccessfulScrapes(t *testing.T) {
	t.Parallel()

	programs := []config.ProgramConfig{{Slug: "ai", URL: "https://example.org/ai"}}
	archive := &fakeArchive{}
	pipeline := NewScrapePipeline(programs, ScrapeDeps{
		Fetcher:   &fakeFetcher{pages: map[string][]byte{"https://example.org/ai": []byte("ai")}},
		Extractor: fakeExtractor{},
		Store:     &fakeStore{},
		Archive:   archive,
		Logger:    logging.New("error"),
	})

	scraped, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, scraped)
	assert.Equal(t, []string{"ai"}, archive.slugs)
}
