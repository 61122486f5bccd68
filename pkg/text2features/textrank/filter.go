package textrank

import (
	"strings"
	"unicode/utf8"

	"github.com/cognicore/text2features/pkg/text2features/annotate"
)

// Filter selects candidate lemmas from annotated sentences.
type Filter struct {
	pos        map[string]struct{}
	ignoreLens map[int]struct{}
}

// NewFilter creates a filter keeping tokens whose POS is in candidatePOS and
// whose lemma length (in runes) is not in ignoreLens.
func NewFilter(candidatePOS []string, ignoreLens []int) *Filter {
	f := &Filter{
		pos:        make(map[string]struct{}, len(candidatePOS)),
		ignoreLens: make(map[int]struct{}, len(ignoreLens)),
	}
	for _, p := range candidatePOS {
		f.pos[p] = struct{}{}
	}
	for _, n := range ignoreLens {
		f.ignoreLens[n] = struct{}{}
	}
	return f
}

// Apply returns, per sentence, the lowercased lemmas of the kept tokens.
// The output has one entry per input sentence, possibly empty.
func (f *Filter) Apply(sentences []annotate.Sentence) [][]string {
	out := make([][]string, len(sentences))
	for i, sent := range sentences {
		words := make([]string, 0, len(sent))
		for _, tok := range sent {
			if f.keep(tok) {
				words = append(words, strings.ToLower(tok.Lemma))
			}
		}
		out[i] = words
	}
	return out
}

func (f *Filter) keep(tok annotate.Token) bool {
	if tok.Stop {
		return false
	}
	if _, ok := f.pos[tok.POS]; !ok {
		return false
	}
	_, ignored := f.ignoreLens[utf8.RuneCountInString(tok.Lemma)]
	return !ignored
}
