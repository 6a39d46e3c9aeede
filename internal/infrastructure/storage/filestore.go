package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ProgramAdvisor/internal/domain"
	"ProgramAdvisor/internal/ports"
)

// FileStore keeps one JSON file per program record under a fixed
// directory. The file base name (without .json) is the lookup key.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

var _ ports.RecordStore = (*FileStore)(nil)

// NewFileStore wires the record directory.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// Save writes the record as <key>.json and returns the key.
func (s *FileStore) Save(record domain.ProgramRecord) (string, error) {
	key := domain.RecordKey(record.Slug)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record %s: %w", key, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, key+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write record %s: %w", path, err)
	}

	return key, nil
}

// LoadAll reads every .json file in the directory. A malformed file is
// skipped with a warning and does not abort the load of other files.
func (s *FileStore) LoadAll() (map[string]domain.ProgramRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %s: %w", s.dir, err)
	}

	records := make(map[string]domain.ProgramRecord)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.warn("cannot read record file", "file", name, "error", err)
			continue
		}

		var record domain.ProgramRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			s.warn("skipping malformed record file", "file", name, "error", err)
			continue
		}

		records[strings.TrimSuffix(name, ".json")] = record
	}

	return records, nil
}

func (s *FileStore) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
