// Package document implements every repository interface on top of a single
// JSON document. Each mutation derives a new document from the current one and
// persists it wholesale through a Backend; last writer wins across processes.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/serenitypath/hospital-api/internal/model"
	"github.com/serenitypath/hospital-api/internal/repository"
)

// Sentinels shared with callers through the repository package.
var (
	ErrNotFound  = repository.ErrNotFound
	ErrDuplicate = repository.ErrDuplicate
)

// Backend persists the serialized document as one opaque blob.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Store holds the live document and guards it against concurrent handlers
// within this process.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	doc     model.Document
}

// Open loads the existing document or seeds and persists the initial one.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	s := &Store{backend: backend}

	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		s.doc = SeedDocument()
		if err := s.persistLocked(ctx, &s.doc); err != nil {
			return nil, fmt.Errorf("failed to persist seed document: %w", err)
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	s.doc.Normalize()
	return s, nil
}

// view runs fn against the current document under a read lock. fn must not
// retain references past its return; copy what you hand out.
func (s *Store) view(fn func(doc *model.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.doc)
}

// update clones the current document, applies fn to the clone, persists the
// whole result and swaps it in. The previous document stays untouched when
// either fn or the save fails.
func (s *Store) update(ctx context.Context, fn func(doc *model.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := clone(&s.doc)
	if err != nil {
		return err
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}
	s.doc = *next
	return nil
}

// Ping probes the backend. A missing document is fine; only transport errors
// count as unhealthy.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.backend.Load(ctx); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context, doc *model.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func clone(doc *model.Document) (*model.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to clone document: %w", err)
	}
	var out model.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to clone document: %w", err)
	}
	out.Normalize()
	return &out, nil
}
