package storage

import (
	"sync"

	"ProgramAdvisor/internal/domain"
)

// Library is the in-memory program record mapping shared by all
// handlers. Reads are concurrent; Replace swaps the whole mapping at
// once so a reload never exposes a partially updated view.
type Library struct {
	mu      sync.RWMutex
	records map[string]domain.ProgramRecord
}

// NewLibrary builds a library from an initial mapping (may be nil).
func NewLibrary(records map[string]domain.ProgramRecord) *Library {
	if records == nil {
		records = map[string]domain.ProgramRecord{}
	}
	return &Library{records: records}
}

// Get looks up a record by its storage key.
func (l *Library) Get(key string) (domain.ProgramRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	record, ok := l.records[key]
	return record, ok
}

// Len reports how many records are loaded.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Replace swaps in a freshly loaded mapping.
func (l *Library) Replace(records map[string]domain.ProgramRecord) {
	if records == nil {
		records = map[string]domain.ProgramRecord{}
	}
	l.mu.Lock()
	l.records = records
	l.mu.Unlock()
}
