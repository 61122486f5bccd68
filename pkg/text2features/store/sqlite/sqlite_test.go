package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cognicore/text2features/pkg/text2features/store"
	"github.com/cognicore/text2features/pkg/text2features/store/storetest"
)

func openTemp(t *testing.T) store.Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return st
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, openTemp)
}

// TestSQLiteReopen checks that runs survive closing the database.
func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	run, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := st.SaveDocument(ctx, run.ID, store.Document{Name: "a.txt", Keywords: []string{"graph"}}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	universe, err := st.Universe(ctx, run.ID)
	if err != nil {
		t.Fatalf("Universe: %v", err)
	}
	if len(universe) != 1 || universe[0] != "graph" {
		t.Errorf("Universe after reopen = %v", universe)
	}
}

// TestSQLiteConcurrentSave saves documents from several goroutines.
func TestSQLiteConcurrentSave(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	defer st.Close()

	run, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	names := []string{"a.txt", "b.txt", "c.txt", "d.txt"}
	var wg sync.WaitGroup
	errs := make(chan error, len(names))
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			errs <- st.SaveDocument(ctx, run.ID, store.Document{Name: name, Keywords: []string{name}})
		}(name)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("SaveDocument: %v", err)
		}
	}

	docs, err := st.Documents(ctx, run.ID)
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != len(names) {
		t.Errorf("expected %d documents, got %d", len(names), len(docs))
	}
}
