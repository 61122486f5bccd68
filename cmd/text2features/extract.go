package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/text2features/pkg/text2features"
	"github.com/cognicore/text2features/pkg/text2features/handler"
	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/metrics"
	"github.com/cognicore/text2features/pkg/text2features/store"
	"github.com/cognicore/text2features/pkg/text2features/store/sqlite"
)

func (a *app) extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract keywords from files into a delimited report",
		Long: `Extract ranks each file's lemmas and writes one row per file:
the file name followed by its keywords. Glob patterns are expanded.
Files ending in .html or .htm are reduced to their text first.`,
		Args: cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			a.bindFlags(cmd, map[string]string{
				"output":           "output",
				"universe":         "universe",
				"delimiter":        "delimiter",
				"lf":               "lf",
				"workers":          "workers",
				"db":               "db",
				"metrics_file":     "metrics-file",
				"algorithm":        "algorithm",
				"stopwords":        "stopwords",
				"stoplist":         "stoplist",
				"lexicon":          "lexicon",
				"stemming":         "stemming",
				"candidate_pos":    "candidate-pos",
				"ignore_words_len": "ignore-len",
				"window_size":      "window-size",
				"min_score":        "min-score",
				"min_number":       "min-number",
				"max_number":       "max-number",
			})
		},
		RunE: a.runExtract,
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "report path (required)")
	f.Bool("universe", false, "also write the sorted keyword universe next to the report")
	f.String("delimiter", ",", `field delimiter, a single character or "tab"`)
	f.Bool("lf", false, `terminate rows with \n instead of \r\n`)
	f.Int("workers", 0, "concurrent extractions (default GOMAXPROCS)")
	f.String("db", "", "SQLite database recording the run (optional)")
	f.String("metrics-file", "", "write Prometheus metrics to this textfile (optional)")

	f.String("algorithm", "", "ranking algorithm (textrank)")
	f.StringSlice("stopwords", nil, "extra stop-words")
	f.String("stoplist", "", "YAML stoplist with a terms: list")
	f.String("lexicon", "", "YAML lemma lexicon")
	f.Bool("stemming", false, "use Snowball stems instead of inflection rules")
	f.StringSlice("candidate-pos", nil, "POS tags kept as candidates (default NOUN,PROPN,VERB)")
	f.IntSlice("ignore-len", nil, "lemma lengths to drop (default 0)")
	f.Int("window-size", 0, "co-occurrence window (default 4)")
	f.Float64("min-score", 0, "score threshold (default 1.0)")
	f.Int("min-number", 0, "minimum keywords per document")
	f.Int("max-number", 0, "maximum keywords per document (default unlimited)")

	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string) error {
	output := a.v.GetString("output")
	if output == "" {
		return fmt.Errorf("%w: --output is required", internalerr.ErrInvalidInput)
	}
	delim, err := parseDelimiter(a.v.GetString("delimiter"))
	if err != nil {
		return err
	}
	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	ext, err := text2features.New(cfg)
	if err != nil {
		return err
	}
	snapshot, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	m := metrics.New()
	opts := handler.Options{
		Workers: a.v.GetInt("workers"),
		Logger:  a.log,
		Metrics: m,
		RunMeta: store.RunMeta{Algorithm: cfg.Algorithm, Config: string(snapshot)},
	}
	if dbPath := a.v.GetString("db"); dbPath != "" {
		st, err := sqlite.Open(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer st.Close()
		if err := m.RegisterStore(st); err != nil {
			return err
		}
		opts.Store = st
	}

	h := handler.New(ext, opts)
	sum, err := h.ProcessToFile(cmd.Context(), files, output, handler.WriteOptions{
		Delimiter:     delim,
		UseCRLF:       !a.v.GetBool("lf"),
		BuildUniverse: a.v.GetBool("universe"),
	})
	if err != nil {
		return err
	}

	if path := a.v.GetString("metrics_file"); path != "" {
		if err := m.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d documents (%d keywords, %d distinct) to %s\n", sum.Documents, sum.Keywords, sum.Universe, sum.Output)
	if sum.UniversePath != "" {
		fmt.Fprintf(out, "Universe: %s\n", sum.UniversePath)
	}
	if sum.RunID != "" {
		fmt.Fprintf(out, "Run: %s\n", sum.RunID)
	}
	return nil
}

// parseDelimiter accepts a single character, or "tab" and `\t` for a tab.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character", internalerr.ErrInvalidInput, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("%w: delimiter %q is not allowed", internalerr.ErrInvalidInput, s)
	}
	return r, nil
}

// expandArgs expands glob patterns. A pattern that matches nothing is an
// error; plain paths are passed through for the reader to report.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[") {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", internalerr.ErrInvalidInput, arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: pattern %q matches no files", internalerr.ErrInvalidInput, arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}
