// Package cache persists the fingerprint cache that lets unchanged files skip reprocessing.
package cache

import (
	"maps"
	"sync"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
)

var _ ports.FingerprintCache = (*Table)(nil)

// Table is an in-memory fingerprint cache safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[string]domain.Fingerprint
}

// NewTable creates a Table seeded with a copy of entries.
func NewTable(entries map[string]domain.Fingerprint) *Table {
	t := &Table{entries: make(map[string]domain.Fingerprint, len(entries))}
	maps.Copy(t.entries, entries)
	return t
}

// Get returns the fingerprint recorded for key.
func (t *Table) Get(key string) (domain.Fingerprint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	fp, ok := t.entries[key]
	return fp, ok
}

// Set records fp for key.
func (t *Table) Set(key string, fp domain.Fingerprint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[key] = fp
}

// Delete removes key.
func (t *Table) Delete(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, key)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Snapshot returns a copy of all entries.
func (t *Table) Snapshot() map[string]domain.Fingerprint {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return maps.Clone(t.entries)
}
