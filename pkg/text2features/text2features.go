// Package text2features turns free text into keyword lists suitable for
// building boolean feature datasets.
package text2features

import (
	"fmt"

	"github.com/cognicore/text2features/pkg/text2features/annotate"
	"github.com/cognicore/text2features/pkg/text2features/config"
	"github.com/cognicore/text2features/pkg/text2features/lexicon"
	"github.com/cognicore/text2features/pkg/text2features/textrank"
)

// Extractor extracts keywords from a single document.
type Extractor interface {
	Extract(text string) ([]string, error)
}

// New builds the configured extractor. Stop-words from cfg and from its
// optional stoplist file are fixed here and never change afterwards.
func New(cfg config.Config) (Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stopwords := append([]string(nil), cfg.Stopwords...)
	if cfg.StoplistPath != "" {
		sl, err := config.LoadStoplist(cfg.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stopwords = append(stopwords, sl.Terms...)
	}

	var lex *lexicon.Lexicon
	if cfg.LexiconPath != "" {
		var err error
		lex, err = lexicon.LoadFromYAML(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	}

	var opts []annotate.Option
	if cfg.Stemming {
		opts = append(opts, annotate.WithSnowball())
	}

	return textrank.New(annotate.NewRuleAnnotator(stopwords, lex, opts...), cfg.RankerOptions())
}
