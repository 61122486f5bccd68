package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/selection"
	"github.com/cognicore/text2features/pkg/text2features/textrank"
)

// AlgorithmTextRank is the only ranking strategy shipped today.
const AlgorithmTextRank = "textrank"

// Config is the full extractor configuration. Every field has a documented
// default, see Default.
type Config struct {
	Algorithm string `yaml:"algorithm"` // default "textrank"

	// Annotation
	Stopwords    []string `yaml:"stopwords"`     // extra stop-words, default none
	StoplistPath string   `yaml:"stoplist_path"` // optional YAML stoplist merged into Stopwords
	LexiconPath  string   `yaml:"lexicon_path"`  // optional lemma lexicon
	Stemming     bool     `yaml:"stemming"`      // Snowball stems instead of inflection rules

	// Candidate filter
	CandidatePOS   []string `yaml:"candidate_pos"`    // default NOUN, PROPN, VERB
	IgnoreWordsLen []int    `yaml:"ignore_words_len"` // default [0]

	// Ranking
	WindowSize int     `yaml:"window_size"` // default 4
	Damping    float64 `yaml:"damping"`     // default 0.85
	MinDiff    float64 `yaml:"min_diff"`    // default 1e-5
	Steps      int     `yaml:"steps"`       // default 10

	// Selection
	MinScore  float64 `yaml:"min_score"`  // default 1.0
	MinNumber int     `yaml:"min_number"` // default 0
	MaxNumber int     `yaml:"max_number"` // default unlimited
}

// Default returns the configuration with every default applied.
func Default() Config {
	opts := textrank.DefaultOptions()
	return Config{
		Algorithm:      AlgorithmTextRank,
		CandidatePOS:   opts.CandidatePOS,
		IgnoreWordsLen: opts.IgnoreLengths,
		WindowSize:     opts.WindowSize,
		Damping:        opts.Damping,
		MinDiff:        opts.MinDiff,
		Steps:          opts.Steps,
		MinScore:       opts.Selection.MinScore,
		MinNumber:      opts.Selection.MinNumber,
		MaxNumber:      opts.Selection.MaxNumber,
	}
}

// Load reads a YAML configuration file on top of the defaults: keys absent
// from the file keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if strings.ToLower(c.Algorithm) != AlgorithmTextRank {
		return fmt.Errorf("%w: unknown algorithm %q", internalerr.ErrInvalidConfig, c.Algorithm)
	}
	for _, n := range c.IgnoreWordsLen {
		if n < 0 {
			return fmt.Errorf("%w: ignore_words_len contains negative length %d", internalerr.ErrInvalidConfig, n)
		}
	}
	return c.RankerOptions().Validate()
}

// RankerOptions converts the configuration into TextRank options.
func (c Config) RankerOptions() textrank.Options {
	return textrank.Options{
		CandidatePOS:  upper(c.CandidatePOS),
		IgnoreLengths: c.IgnoreWordsLen,
		WindowSize:    c.WindowSize,
		Damping:       c.Damping,
		MinDiff:       c.MinDiff,
		Steps:         c.Steps,
		Selection: selection.Policy{
			MinScore:  c.MinScore,
			MinNumber: c.MinNumber,
			MaxNumber: c.MaxNumber,
		},
	}
}

func upper(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = strings.ToUpper(strings.TrimSpace(t))
	}
	return out
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}

	return &sl, nil
}
