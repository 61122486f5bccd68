// Package textrank extracts keywords with TextRank.
//
// The pipeline runs strictly forward:
//
//	annotated sentences → candidate lemmas → vocabulary → co-occurrence graph
//	→ column-normalized graph → propagated scores → selected keywords
//
// Each call builds and discards its own vocabulary, graph and score vector,
// so a Ranker is safe for concurrent use as long as its Annotator is.
//
// Reference: Mihalcea & Tarau, "TextRank: Bringing Order into Texts" (2004).
package textrank

import (
	"fmt"

	"github.com/cognicore/text2features/pkg/text2features/annotate"
	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/selection"
)

const (
	DefaultWindowSize = 4
	DefaultDamping    = 0.85 // PageRank damping factor
	DefaultMinDiff    = 1e-5 // convergence threshold on the score total
	DefaultSteps      = 10   // iteration cap
)

// DefaultCandidatePOS are the POS tags kept as candidates by default.
var DefaultCandidatePOS = []string{annotate.NOUN, annotate.PROPN, annotate.VERB}

// DefaultIgnoreLengths drops empty lemmas.
var DefaultIgnoreLengths = []int{0}

// Options configures a Ranker. Start from DefaultOptions and override.
type Options struct {
	CandidatePOS  []string
	IgnoreLengths []int
	WindowSize    int
	Damping       float64
	MinDiff       float64
	Steps         int
	Selection     selection.Policy
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		CandidatePOS:  append([]string(nil), DefaultCandidatePOS...),
		IgnoreLengths: append([]int(nil), DefaultIgnoreLengths...),
		WindowSize:    DefaultWindowSize,
		Damping:       DefaultDamping,
		MinDiff:       DefaultMinDiff,
		Steps:         DefaultSteps,
		Selection:     selection.DefaultPolicy(),
	}
}

// Validate checks option ranges. A window below 2 is valid and yields an
// empty graph.
func (o Options) Validate() error {
	switch {
	case o.WindowSize < 0:
		return fmt.Errorf("%w: window size %d is negative", internalerr.ErrInvalidConfig, o.WindowSize)
	case o.Damping < 0 || o.Damping > 1:
		return fmt.Errorf("%w: damping %v outside [0, 1]", internalerr.ErrInvalidConfig, o.Damping)
	case o.MinDiff <= 0:
		return fmt.Errorf("%w: min diff %v must be positive", internalerr.ErrInvalidConfig, o.MinDiff)
	case o.Steps < 1:
		return fmt.Errorf("%w: steps %d must be at least 1", internalerr.ErrInvalidConfig, o.Steps)
	case o.Selection.MinNumber < 0:
		return fmt.Errorf("%w: min number %d is negative", internalerr.ErrInvalidConfig, o.Selection.MinNumber)
	case o.Selection.MaxNumber < 0:
		return fmt.Errorf("%w: max number %d is negative", internalerr.ErrInvalidConfig, o.Selection.MaxNumber)
	}
	return nil
}

// Ranker extracts keywords from text with TextRank.
type Ranker struct {
	annotator annotate.Annotator
	filter    *Filter
	opts      Options
}

// New validates opts once and returns a Ranker.
func New(annotator annotate.Annotator, opts Options) (*Ranker, error) {
	if annotator == nil {
		return nil, fmt.Errorf("%w: annotator is required", internalerr.ErrInvalidConfig)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{
		annotator: annotator,
		filter:    NewFilter(opts.CandidatePOS, opts.IgnoreLengths),
		opts:      opts,
	}, nil
}

// Options returns the ranker's resolved options.
func (r *Ranker) Options() Options { return r.opts }

// Ranking is the full result of ranking one document.
type Ranking struct {
	Words      []string  // vocabulary in first-seen order
	Scores     []float64 // score per word, same order
	Iterations int
	Converged  bool
}

// Scored pairs words with their scores in vocabulary order.
func (rk Ranking) Scored() []selection.Scored {
	out := make([]selection.Scored, len(rk.Words))
	for i, w := range rk.Words {
		out[i] = selection.Scored{Word: w, Score: rk.Scores[i]}
	}
	return out
}

// Rank annotates text and ranks its candidate lemmas.
// Annotator errors are returned unchanged.
func (r *Ranker) Rank(text string) (Ranking, error) {
	sentences, err := r.annotator.Annotate(text)
	if err != nil {
		return Ranking{}, err
	}
	return r.RankSentences(r.filter.Apply(sentences)), nil
}

// RankSentences ranks already filtered sentences of lemmas.
func (r *Ranker) RankSentences(sentences [][]string) Ranking {
	vocab := BuildVocabulary(sentences)
	pairs := TokenPairs(sentences, r.opts.WindowSize)
	g := BuildGraph(vocab, pairs).NormalizeColumns()
	prop := Propagate(g, r.opts.Damping, r.opts.MinDiff, r.opts.Steps)

	return Ranking{
		Words:      vocab.Words(),
		Scores:     prop.Scores,
		Iterations: prop.Iterations,
		Converged:  prop.Converged,
	}
}

// Extract returns the selected keywords of text.
func (r *Ranker) Extract(text string) ([]string, error) {
	ranking, err := r.Rank(text)
	if err != nil {
		return nil, err
	}
	return r.opts.Selection.Select(ranking.Scored()), nil
}
