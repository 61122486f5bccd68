package metrics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cognicore/text2features/pkg/text2features/store"
	"github.com/cognicore/text2features/pkg/text2features/store/memstore"
)

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveDocument(3, 10*time.Millisecond)
	m.ObserveDocument(0, time.Millisecond)
	m.ObserveFailure()
	m.SetUniverse(7)

	if got := testutil.ToFloat64(m.documents.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("ok documents = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.documents.WithLabelValues(OutcomeError)); got != 1 {
		t.Errorf("failed documents = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.universe); got != 7 {
		t.Errorf("universe = %v, want 7", got)
	}

	expected := `
# HELP text2features_keywords_per_document Keywords selected per document
# TYPE text2features_keywords_per_document histogram
text2features_keywords_per_document_bucket{le="0"} 1
text2features_keywords_per_document_bucket{le="1"} 1
text2features_keywords_per_document_bucket{le="2"} 1
text2features_keywords_per_document_bucket{le="5"} 2
text2features_keywords_per_document_bucket{le="10"} 2
text2features_keywords_per_document_bucket{le="20"} 2
text2features_keywords_per_document_bucket{le="50"} 2
text2features_keywords_per_document_bucket{le="100"} 2
text2features_keywords_per_document_bucket{le="+Inf"} 2
text2features_keywords_per_document_sum 3
text2features_keywords_per_document_count 2
`
	if err := testutil.CollectAndCompare(m.keywords, strings.NewReader(expected)); err != nil {
		t.Errorf("keywords histogram: %v", err)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveDocument(1, time.Second)
	m.ObserveFailure()
	m.SetUniverse(1)
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Errorf("WriteTextfile on nil: %v", err)
	}
	if err := m.RegisterStore(memstore.New()); err != nil {
		t.Errorf("RegisterStore on nil: %v", err)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveDocument(4, 2*time.Millisecond)

	path := filepath.Join(t.TempDir(), "text2features.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, want := range []string{
		`text2features_documents_total{outcome="ok"} 1`,
		"text2features_extraction_duration_seconds_count 1",
		"text2features_universe_size 0",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}

func TestRunCollector(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	for i := 0; i < 2; i++ {
		if _, err := st.BeginRun(ctx, store.RunMeta{Algorithm: "textrank"}); err != nil {
			t.Fatal(err)
		}
	}

	m := New()
	if err := m.RegisterStore(st); err != nil {
		t.Fatalf("RegisterStore: %v", err)
	}

	expected := `
# HELP text2features_store_runs Extraction runs held in the run store
# TYPE text2features_store_runs gauge
text2features_store_runs 2
`
	if err := testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "text2features_store_runs"); err != nil {
		t.Errorf("stored runs: %v", err)
	}
}
