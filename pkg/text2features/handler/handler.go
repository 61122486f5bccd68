// Package handler runs keyword extraction over batches of files and writes
// the per-document keyword rows and the keyword universe.
package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/text2features/pkg/text2features"
	"github.com/cognicore/text2features/pkg/text2features/metrics"
	"github.com/cognicore/text2features/pkg/text2features/store"
)

// Result holds the keywords of one file.
type Result struct {
	File     string   // path as given
	Name     string   // base name, used as the row label
	Keywords []string // never nil
}

// Options configures a FileHandler. The zero value is usable.
type Options struct {
	Workers int                // concurrent extractions, default GOMAXPROCS
	Logger  logrus.FieldLogger // default logrus.StandardLogger()
	Metrics *metrics.Metrics   // optional
	Store   store.Store        // optional, records each ProcessToFile run
	RunMeta store.RunMeta      // metadata stored with each run
}

// FileHandler extracts keywords from files with a shared extractor.
type FileHandler struct {
	extractor text2features.Extractor
	workers   int
	log       logrus.FieldLogger
	metrics   *metrics.Metrics
	store     store.Store
	runMeta   store.RunMeta
}

// New creates a FileHandler. The extractor must be safe for concurrent use.
func New(extractor text2features.Extractor, opts Options) *FileHandler {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &FileHandler{
		extractor: extractor,
		workers:   opts.Workers,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		store:     opts.Store,
		runMeta:   opts.RunMeta,
	}
}

// Process extracts keywords from every file and returns one Result per file
// in input order. The first failure cancels the remaining files and is
// returned wrapped with the file path.
func (h *FileHandler) Process(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.workers)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := h.processFile(file)
			if err != nil {
				h.metrics.ObserveFailure()
				h.log.WithError(err).WithField("file", file).Error("extraction failed")
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (h *FileHandler) processFile(file string) (Result, error) {
	start := time.Now()
	text, err := readText(file)
	if err != nil {
		return Result{}, err
	}
	keywords, err := h.extractor.Extract(text)
	if err != nil {
		return Result{}, err
	}
	if keywords == nil {
		keywords = []string{}
	}

	took := time.Since(start)
	h.metrics.ObserveDocument(len(keywords), took)
	h.log.WithFields(logrus.Fields{
		"file":     file,
		"keywords": len(keywords),
		"took":     took,
	}).Debug("extracted keywords")

	return Result{File: file, Name: filepath.Base(file), Keywords: keywords}, nil
}

// WriteOptions controls the batch output format.
type WriteOptions struct {
	Delimiter     rune // field separator, default ','
	UseCRLF       bool // terminate rows with \r\n instead of \n
	BuildUniverse bool // also write UniversePath(output)
}

// DefaultWriteOptions returns comma-separated rows terminated by \r\n.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Delimiter: ',', UseCRLF: true}
}

// Summary describes a completed batch.
type Summary struct {
	RunID        string // empty without a store
	Documents    int
	Keywords     int // total across documents
	Universe     int // distinct keywords
	Output       string
	UniversePath string // empty unless the universe was written
	Duration     time.Duration
}

// ProcessToFile extracts keywords from files and writes one row per file,
// `name, kw1, kw2, ...`, to output. With BuildUniverse it also writes the
// sorted distinct keywords, one per line, to UniversePath(output).
// The run is recorded in the store before any file is written, so a store
// failure leaves no output behind.
func (h *FileHandler) ProcessToFile(ctx context.Context, files []string, output string, opts WriteOptions) (Summary, error) {
	start := time.Now()

	results, err := h.Process(ctx, files)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Documents: len(results), Output: output}
	if h.store != nil {
		runID, err := h.record(ctx, output, results)
		if err != nil {
			return Summary{}, fmt.Errorf("record run: %w", err)
		}
		sum.RunID = runID
	}

	if err := writeRows(output, results, opts); err != nil {
		return Summary{}, fmt.Errorf("write %s: %w", output, err)
	}

	universe := Universe(results)
	sum.Universe = len(universe)
	for _, r := range results {
		sum.Keywords += len(r.Keywords)
	}
	h.metrics.SetUniverse(len(universe))

	if opts.BuildUniverse {
		sum.UniversePath = UniversePath(output)
		if err := os.WriteFile(sum.UniversePath, []byte(strings.Join(universe, "\n")), 0o644); err != nil {
			return Summary{}, fmt.Errorf("write universe: %w", err)
		}
	}

	sum.Duration = time.Since(start)
	h.log.WithFields(logrus.Fields{
		"run":       sum.RunID,
		"documents": sum.Documents,
		"keywords":  sum.Keywords,
		"universe":  sum.Universe,
		"output":    output,
	}).Info("batch complete")
	return sum, nil
}

func writeRows(output string, results []Result, opts WriteOptions) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if opts.Delimiter != 0 {
		w.Comma = opts.Delimiter
	}
	w.UseCRLF = opts.UseCRLF

	for _, r := range results {
		row := make([]string, 0, len(r.Keywords)+1)
		row = append(row, r.Name)
		row = append(row, r.Keywords...)
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (h *FileHandler) record(ctx context.Context, output string, results []Result) (string, error) {
	meta := h.runMeta
	if meta.Output == "" {
		meta.Output = output
	}
	run, err := h.store.BeginRun(ctx, meta)
	if err != nil {
		return "", err
	}
	for _, r := range results {
		if err := h.store.SaveDocument(ctx, run.ID, store.Document{Name: r.Name, Keywords: r.Keywords}); err != nil {
			return "", err
		}
	}
	return run.ID, nil
}

// Universe returns the sorted distinct keywords across results.
func Universe(results []Result) []string {
	set := make(map[string]struct{})
	for _, r := range results {
		for _, kw := range r.Keywords {
			set[kw] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// UniversePath derives the universe file name from the batch output path:
// report.csv becomes report_universum.csv. A path without an extension gets
// _universum.csv appended.
func UniversePath(output string) string {
	ext := filepath.Ext(output)
	if ext == "" {
		return output + "_universum.csv"
	}
	return strings.TrimSuffix(output, ext) + "_universum" + ext
}
