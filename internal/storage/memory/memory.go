// Package memory provides a default in-process storage.Publisher, used
// by the CLI when no durable backend is configured and by tests.
package memory

import (
	"sync"

	"github.com/logtt/logtt/internal/materializer"
	"github.com/logtt/logtt/internal/storage"
)

// Store is a concurrency-safe in-memory storage.Publisher.
type Store struct {
	mu        sync.RWMutex
	structured map[string][]materializer.StructuredRow
	templates  map[string][]materializer.TemplateRow
}

// New builds an empty Store.
func New() *Store {
	return &Store{
		structured: make(map[string][]materializer.StructuredRow),
		templates:  make(map[string][]materializer.TemplateRow),
	}
}

func (s *Store) TableExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.structured[name]; ok {
		return true
	}
	_, ok := s.templates[name]
	return ok
}

func (s *Store) Publish(r storage.Relations, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !overwrite {
		if _, ok := s.structured[r.StructuredTable]; ok {
			return storage.ErrOutputConflict
		}
		if _, ok := s.templates[r.TemplatesTable]; ok {
			return storage.ErrOutputConflict
		}
	}

	s.structured[r.StructuredTable] = r.Structured
	s.templates[r.TemplatesTable] = r.Templates
	return nil
}

// Structured returns a previously published structured relation.
func (s *Store) Structured(name string) ([]materializer.StructuredRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.structured[name]
	return rows, ok
}

// Templates returns a previously published templates relation.
func (s *Store) Templates(name string) ([]materializer.TemplateRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.templates[name]
	return rows, ok
}
