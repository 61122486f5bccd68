package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	runs  map[string]*runState
	order []string // run IDs in creation order
	now   func() time.Time
}

type runState struct {
	run   store.Run
	docs  []store.Document
	index map[string]int // document name -> position in docs
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs: make(map[string]*runState),
		now:  time.Now,
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// BeginRun implements store.Store.
func (s *Store) BeginRun(ctx context.Context, meta store.RunMeta) (store.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now().UTC()
	run := store.Run{
		ID:        store.NewRunID(started),
		StartedAt: started,
		Algorithm: meta.Algorithm,
		Output:    meta.Output,
		Config:    meta.Config,
	}
	s.runs[run.ID] = &runState{run: run, index: make(map[string]int)}
	s.order = append(s.order, run.ID)
	return run, nil
}

// Runs implements store.Store, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Run
	for i := len(s.order) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		st := s.runs[s.order[i]]
		r := st.run
		r.Documents = len(st.docs)
		out = append(out, r)
	}
	return out, nil
}

// SaveDocument inserts or replaces a document, keyed by name within the run.
func (s *Store) SaveDocument(ctx context.Context, runID string, d store.Document) error {
	if d.Name == "" {
		return fmt.Errorf("%w: document name is required", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.runs[runID]
	if !ok {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}

	d = copyDocument(d)
	if i, ok := st.index[d.Name]; ok {
		st.docs[i] = d
		return nil
	}
	st.index[d.Name] = len(st.docs)
	st.docs = append(st.docs, d)
	return nil
}

// Documents implements store.Store.
func (s *Store) Documents(ctx context.Context, runID string) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	out := make([]store.Document, len(st.docs))
	for i, d := range st.docs {
		out[i] = copyDocument(d)
	}
	return out, nil
}

// Universe implements store.Store.
func (s *Store) Universe(ctx context.Context, runID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}

	set := make(map[string]struct{})
	for _, d := range st.docs {
		for _, kw := range d.Keywords {
			set[kw] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out, nil
}

// copyDocument drops empty and repeated keywords, keeping first occurrences.
func copyDocument(d store.Document) store.Document {
	seen := make(map[string]struct{}, len(d.Keywords))
	kws := make([]string, 0, len(d.Keywords))
	for _, kw := range d.Keywords {
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		kws = append(kws, kw)
	}
	return store.Document{Name: d.Name, Keywords: kws}
}
