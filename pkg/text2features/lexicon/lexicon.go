package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon maps inflected word forms to their lemma.
// Irregular forms ("went" → "go", "mice" → "mouse") and domain-specific
// spellings ("e-mail" → "email") belong here; regular inflection is handled
// by the annotator's suffix rules.
//
// A Lexicon is read-only after loading and safe for concurrent lookups.
type Lexicon struct {
	// lemma -> all forms (lemma first)
	forms map[string][]string

	// form -> lemma
	reverse map[string]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		forms:   make(map[string][]string),
		reverse: make(map[string]string),
	}
}

// LoadFromYAML loads lemma mappings from a YAML file.
//
// Expected format:
//
//	lemmas:
//	  - lemma: go
//	    forms: [goes, went, gone, going]
//	  - lemma: mouse
//	    forms: [mice]
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a lexicon from YAML bytes in the LoadFromYAML format.
func Parse(data []byte) (*Lexicon, error) {
	var doc struct {
		Lemmas []struct {
			Lemma string   `yaml:"lemma"`
			Forms []string `yaml:"forms"`
		} `yaml:"lemmas"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := New()
	for _, entry := range doc.Lemmas {
		if strings.TrimSpace(entry.Lemma) == "" {
			continue
		}
		lex.Add(entry.Lemma, entry.Forms)
	}
	return lex, nil
}

// Add registers forms for a lemma. The lemma maps to itself.
// Re-adding a lemma replaces its previous forms.
func (l *Lexicon) Add(lemma string, forms []string) {
	lemma = strings.ToLower(strings.TrimSpace(lemma))

	if old, ok := l.forms[lemma]; ok {
		for _, f := range old {
			delete(l.reverse, f)
		}
	}

	all := make([]string, 0, len(forms)+1)
	seen := map[string]bool{lemma: true}
	all = append(all, lemma)
	for _, f := range forms {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		all = append(all, f)
	}

	l.forms[lemma] = all
	for _, f := range all {
		l.reverse[f] = lemma
	}
}

// Lemma returns the lemma registered for a form.
func (l *Lexicon) Lemma(form string) (string, bool) {
	if l == nil {
		return "", false
	}
	lemma, ok := l.reverse[strings.ToLower(form)]
	return lemma, ok
}

// Forms returns every known form of a word's lemma, lemma first.
// Unknown words return a slice holding only the word itself.
func (l *Lexicon) Forms(word string) []string {
	word = strings.ToLower(word)
	if l == nil {
		return []string{word}
	}
	if lemma, ok := l.reverse[word]; ok {
		return l.forms[lemma]
	}
	return []string{word}
}

// Len returns the number of lemmas in the lexicon.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.forms)
}
