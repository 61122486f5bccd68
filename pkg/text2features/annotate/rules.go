package annotate

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/text2features/pkg/text2features/lexicon"
)

// RuleAnnotator is a dictionary and suffix-rule English annotator.
// It needs no model files; its stop-word set and lexicon are fixed at
// construction, so one instance can serve any number of goroutines.
type RuleAnnotator struct {
	stopwords map[string]struct{}
	lexicon   *lexicon.Lexicon
	stem      bool
}

// Option configures a RuleAnnotator.
type Option func(*RuleAnnotator)

// WithSnowball replaces the inflection rules with the Snowball English
// stemmer for open-class words and adds Snowball's stop-word list. Lemmas
// become stems ("equations" -> "equat"). Lexicon entries still win.
func WithSnowball() Option {
	return func(a *RuleAnnotator) { a.stem = true }
}

// NewRuleAnnotator creates an annotator using the built-in English stop-word
// list extended with extra. lex may be nil.
func NewRuleAnnotator(extra []string, lex *lexicon.Lexicon, opts ...Option) *RuleAnnotator {
	stops := make(map[string]struct{}, len(defaultStopwords)+len(extra))
	for _, w := range defaultStopwords {
		stops[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		w = strings.TrimRight(w, ".")
		if w != "" {
			stops[w] = struct{}{}
		}
	}
	a := &RuleAnnotator{stopwords: stops, lexicon: lex}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsStopword reports whether word is in the annotator's stop-word set.
func (a *RuleAnnotator) IsStopword(word string) bool {
	return a.isStop(strings.ToLower(word))
}

// Annotate implements Annotator. It never fails.
func (a *RuleAnnotator) Annotate(text string) ([]Sentence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// Casers carry state and are not safe for concurrent use.
	lower := cases.Lower(language.Und)

	raw := scan(norm.NFC.String(text))
	sentences := make([]Sentence, 0, len(raw))
	for _, words := range raw {
		sent := make(Sentence, len(words))
		prev := ""
		for i, w := range words {
			low := lower.String(w.text)
			pos := tag(w, low, prev)
			lemma := a.lemmatize(low, pos)
			sent[i] = Token{
				Text:  w.text,
				Lemma: lemma,
				POS:   pos,
				Stop:  a.isStop(low) || a.isStop(lemma),
			}
			prev = low
		}
		sentences = append(sentences, sent)
	}
	return sentences, nil
}

func (a *RuleAnnotator) isStop(s string) bool {
	if _, ok := a.stopwords[s]; ok {
		return true
	}
	return a.stem && english.IsStopWord(s)
}

// tag assigns a Universal POS tag from the word, its lowercase form and the
// lowercase form of the previous word.
func tag(w word, low, prev string) string {
	if t, ok := closedClass[low]; ok {
		return t
	}
	if isNumeric(low) {
		return NUM
	}
	if isProper(w) {
		return PROPN
	}
	if verbTriggers[prev] {
		return VERB
	}

	n := len(low)
	switch {
	case n > 4 && strings.HasSuffix(low, "ly"):
		return ADV
	case n > 5 && strings.HasSuffix(low, "ing"),
		n > 4 && strings.HasSuffix(low, "ed"),
		n > 5 && (strings.HasSuffix(low, "ize") || strings.HasSuffix(low, "ify")):
		return VERB
	case n > 5 && hasAnySuffix(low, "ous", "ful", "able", "ible", "ive", "less", "ical", "ish"):
		return ADJ
	}
	return NOUN
}

// isProper treats capitalized words as proper nouns unless they open the
// sentence. All-caps acronyms are proper nouns anywhere.
func isProper(w word) bool {
	runes := []rune(w.text)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	if !w.initial {
		return true
	}
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '-' || r == '\'':
		default:
			return false
		}
	}
	return digits > 0
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// lemmatize maps a lowercase word to its base form: lexicon entries first,
// then irregular tables, then regular inflection rules.
func (a *RuleAnnotator) lemmatize(low, pos string) string {
	if lemma, ok := a.lexicon.Lemma(low); ok {
		return lemma
	}
	if a.stem {
		switch pos {
		case NOUN, PROPN, VERB, ADJ, ADV:
			return english.Stem(low, false)
		}
		return low
	}

	switch pos {
	case NOUN:
		if lemma, ok := irregularNouns[low]; ok {
			return lemma
		}
		return singular(low)
	case VERB:
		if lemma, ok := irregularVerbs[low]; ok {
			return lemma
		}
		return verbBase(low)
	}
	return low
}

func singular(s string) string {
	n := len(s)
	switch {
	case n > 4 && strings.HasSuffix(s, "ies"):
		return s[:n-3] + "y"
	case n > 4 && hasAnySuffix(s, "sses", "xes", "ches", "shes", "zzes"):
		return s[:n-2]
	case n > 3 && strings.HasSuffix(s, "s") && !hasAnySuffix(s, "ss", "us", "is"):
		return s[:n-1]
	}
	return s
}

func verbBase(s string) string {
	n := len(s)
	switch {
	case n > 4 && strings.HasSuffix(s, "ied"):
		return s[:n-3] + "y"
	case n > 5 && strings.HasSuffix(s, "ing") && doubled(s[:n-3]):
		return s[:n-4]
	case n > 4 && strings.HasSuffix(s, "ed") && doubled(s[:n-2]):
		return s[:n-3]
	}
	return singular(s)
}

// doubled reports a stem ending in a doubled consonant (stopp, runn).
func doubled(stem string) bool {
	n := len(stem)
	if n < 3 {
		return false
	}
	c := stem[n-1]
	return c == stem[n-2] && !strings.ContainsRune("aeiouls", rune(c))
}
