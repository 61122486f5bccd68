// Package storetest holds behavioural tests shared by every store.Store
// implementation.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/store"
)

// Run exercises a fresh store returned by open. open must return an empty
// store; Run closes it.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	t.Run("RunLifecycle", func(t *testing.T) { testRunLifecycle(t, open(t)) })
	t.Run("ReplaceDocument", func(t *testing.T) { testReplaceDocument(t, open(t)) })
	t.Run("UnknownRun", func(t *testing.T) { testUnknownRun(t, open(t)) })
	t.Run("RunsNewestFirst", func(t *testing.T) { testRunsNewestFirst(t, open(t)) })
	t.Run("EmptyRun", func(t *testing.T) { testEmptyRun(t, open(t)) })
}

func testRunLifecycle(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	run, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank", Output: "out.csv", Config: "window_size: 4\n"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if len(run.ID) != 26 {
		t.Errorf("run ID %q is not a ULID", run.ID)
	}

	docs := []store.Document{
		{Name: "a.txt", Keywords: []string{"graph", "rank", "word"}},
		{Name: "b.txt", Keywords: []string{"word", "score", "score", ""}},
		{Name: "c.txt", Keywords: nil},
	}
	for _, d := range docs {
		if err := st.SaveDocument(ctx, run.ID, d); err != nil {
			t.Fatalf("SaveDocument(%s): %v", d.Name, err)
		}
	}

	got, err := st.Documents(ctx, run.ID)
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	want := []store.Document{
		{Name: "a.txt", Keywords: []string{"graph", "rank", "word"}},
		{Name: "b.txt", Keywords: []string{"word", "score"}},
		{Name: "c.txt", Keywords: []string{}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Documents mismatch (-want +got):\n%s", diff)
	}

	universe, err := st.Universe(ctx, run.ID)
	if err != nil {
		t.Fatalf("Universe: %v", err)
	}
	if diff := cmp.Diff([]string{"graph", "rank", "score", "word"}, universe); diff != "" {
		t.Errorf("Universe mismatch (-want +got):\n%s", diff)
	}

	runs, err := st.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != run.ID || r.Algorithm != "textrank" || r.Output != "out.csv" || r.Config != "window_size: 4\n" {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.Documents != 3 {
		t.Errorf("run documents = %d, want 3", r.Documents)
	}
	if !r.StartedAt.Equal(run.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", r.StartedAt, run.StartedAt)
	}
}

func testReplaceDocument(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	run, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank"})
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := st.SaveDocument(ctx, run.ID, store.Document{Name: "a.txt", Keywords: []string{"old"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveDocument(ctx, run.ID, store.Document{Name: "b.txt", Keywords: []string{"other"}}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveDocument(ctx, run.ID, store.Document{Name: "a.txt", Keywords: []string{"new", "newer"}}); err != nil {
		t.Fatal(err)
	}

	got, err := st.Documents(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := []store.Document{
		{Name: "a.txt", Keywords: []string{"new", "newer"}},
		{Name: "b.txt", Keywords: []string{"other"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Documents mismatch (-want +got):\n%s", diff)
	}

	universe, err := st.Universe(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"new", "newer", "other"}, universe); diff != "" {
		t.Errorf("replaced keywords still in universe (-want +got):\n%s", diff)
	}

	if err := st.SaveDocument(ctx, run.ID, store.Document{}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("unnamed document: expected ErrInvalidInput, got %v", err)
	}
}

func testUnknownRun(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	if err := st.SaveDocument(ctx, "missing", store.Document{Name: "a.txt"}); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("SaveDocument: expected ErrNotFound, got %v", err)
	}
	if _, err := st.Documents(ctx, "missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Documents: expected ErrNotFound, got %v", err)
	}
	if _, err := st.Universe(ctx, "missing"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Universe: expected ErrNotFound, got %v", err)
	}
}

func testRunsNewestFirst(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		run, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank"})
		if err != nil {
			t.Fatalf("BeginRun: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := st.Runs(ctx, 2)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("runs not newest first: got %s, %s; created %v", runs[0].ID, runs[1].ID, ids)
	}
}

func testEmptyRun(t *testing.T, st store.Store) {
	defer st.Close()
	ctx := context.Background()

	run, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank"})
	if err != nil {
		t.Fatal(err)
	}
	docs, err := st.Documents(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %v", docs)
	}
	universe, err := st.Universe(ctx, run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(universe) != 0 {
		t.Errorf("expected empty universe, got %v", universe)
	}
}
