package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists extraction runs and the keywords found per document.
type Store interface {
	Close() error

	// Runs
	BeginRun(ctx context.Context, meta RunMeta) (Run, error)
	Runs(ctx context.Context, limit int) ([]Run, error)

	// Documents
	SaveDocument(ctx context.Context, runID string, d Document) error
	Documents(ctx context.Context, runID string) ([]Document, error)

	// Universe returns the sorted union of keywords across a run.
	Universe(ctx context.Context, runID string) ([]string, error)
}

// RunMeta describes a run when it starts.
type RunMeta struct {
	Algorithm string
	Output    string // batch output path, if any
	Config    string // YAML snapshot of the resolved configuration
}

// Run is a stored extraction run.
type Run struct {
	ID        string // ULID, sortable by start time
	StartedAt time.Time
	Algorithm string
	Output    string
	Config    string
	Documents int
}

// Document is one extracted document of a run.
type Document struct {
	Name     string
	Keywords []string // in extraction order
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a fresh monotonic ULID for t.
func NewRunID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
