package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens a SQLite database with WAL mode and foreign keys enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: pragmas stick and concurrent writers queue instead of
	// failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	algorithm TEXT NOT NULL,
	output TEXT,
	config TEXT
);

CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	name TEXT NOT NULL,
	UNIQUE(run_id, name),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS document_keywords (
	doc_id INTEGER NOT NULL,
	position INTEGER NOT NULL,
	keyword TEXT NOT NULL,
	PRIMARY KEY(doc_id, position),
	FOREIGN KEY(doc_id) REFERENCES documents(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_document_keywords_keyword ON document_keywords(keyword);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// BeginRun records a new run and returns it with a fresh ULID.
func (s *sqliteStore) BeginRun(ctx context.Context, meta store.RunMeta) (store.Run, error) {
	started := s.now().UTC()
	run := store.Run{
		ID:        store.NewRunID(started),
		StartedAt: started,
		Algorithm: meta.Algorithm,
		Output:    meta.Output,
		Config:    meta.Config,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, algorithm, output, config) VALUES (?, ?, ?, ?, ?)`,
		run.ID, started.Format(time.RFC3339Nano), run.Algorithm, run.Output, run.Config,
	)
	if err != nil {
		return store.Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Runs lists runs, newest first. limit <= 0 means all.
func (s *sqliteStore) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT r.id, r.started_at, r.algorithm, COALESCE(r.output, ''), COALESCE(r.config, ''), COUNT(d.id)
FROM runs r
LEFT JOIN documents d ON d.run_id = r.id
GROUP BY r.id
ORDER BY r.id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var (
			r       store.Run
			started string
		)
		if err := rows.Scan(&r.ID, &started, &r.Algorithm, &r.Output, &r.Config, &r.Documents); err != nil {
			return nil, err
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("run %s: parse started_at: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SaveDocument inserts or replaces a document's keywords within a run.
func (s *sqliteStore) SaveDocument(ctx context.Context, runID string, d store.Document) error {
	if d.Name == "" {
		return fmt.Errorf("%w: document name is required", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := requireRun(ctx, tx, runID); err != nil {
		return err
	}

	const stmt = `
INSERT INTO documents (run_id, name)
VALUES (?, ?)
ON CONFLICT(run_id, name) DO UPDATE SET name=excluded.name
RETURNING id;
`

	var docID int64
	if err := tx.QueryRowContext(ctx, stmt, runID, d.Name).Scan(&docID); err != nil {
		return err
	}

	if err := replaceKeywords(ctx, tx, docID, uniqueStrings(d.Keywords)); err != nil {
		return err
	}

	return tx.Commit()
}

func requireRun(ctx context.Context, tx *sql.Tx, runID string) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id=?`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	return err
}

func replaceKeywords(ctx context.Context, tx *sql.Tx, docID int64, keywords []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM document_keywords WHERE doc_id=?`, docID); err != nil {
		return err
	}
	if len(keywords) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO document_keywords (doc_id, position, keyword) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, kw := range keywords {
		if _, err := stmt.ExecContext(ctx, docID, i, kw); err != nil {
			return err
		}
	}
	return nil
}

// Documents returns a run's documents in insertion order.
func (s *sqliteStore) Documents(ctx context.Context, runID string) ([]store.Document, error) {
	if err := s.runExists(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT d.id, d.name, k.keyword
FROM documents d
LEFT JOIN document_keywords k ON k.doc_id = d.id
WHERE d.run_id = ?
ORDER BY d.id, k.position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		docs   []store.Document
		lastID int64 = -1
	)
	for rows.Next() {
		var (
			id      int64
			name    string
			keyword sql.NullString
		)
		if err := rows.Scan(&id, &name, &keyword); err != nil {
			return nil, err
		}
		if id != lastID {
			docs = append(docs, store.Document{Name: name, Keywords: []string{}})
			lastID = id
		}
		if keyword.Valid {
			cur := &docs[len(docs)-1]
			cur.Keywords = append(cur.Keywords, keyword.String)
		}
	}
	return docs, rows.Err()
}

// Universe returns the sorted distinct keywords of a run.
func (s *sqliteStore) Universe(ctx context.Context, runID string) ([]string, error) {
	if err := s.runExists(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT DISTINCT k.keyword
FROM document_keywords k
JOIN documents d ON d.id = k.doc_id
WHERE d.run_id = ?
ORDER BY k.keyword`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	universe := []string{}
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, err
		}
		universe = append(universe, kw)
	}
	return universe, rows.Err()
}

func (s *sqliteStore) runExists(ctx context.Context, runID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id=?`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	return err
}

func uniqueStrings(in []string) []string {
	set := make(map[string]struct{}, len(in))
	var out []string
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, ok := set[v]; ok {
			continue
		}
		set[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
