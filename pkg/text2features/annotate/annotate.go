// Package annotate defines the linguistic annotation contract consumed by the
// keyword rankers and ships a lightweight rule-based English annotator.
//
// An Annotator splits a document into sentences of tokens. Each token carries
// a Universal POS tag, a lemma and a stop-word flag. The rankers never look at
// raw text; anything able to produce this structure (a rule-based tagger, a
// statistical model behind an RPC) can be plugged in.
package annotate

// Universal POS tags used by the rule-based annotator.
const (
	ADJ   = "ADJ"
	ADP   = "ADP"
	ADV   = "ADV"
	AUX   = "AUX"
	CCONJ = "CCONJ"
	DET   = "DET"
	INTJ  = "INTJ"
	NOUN  = "NOUN"
	NUM   = "NUM"
	PART  = "PART"
	PRON  = "PRON"
	PROPN = "PROPN"
	SCONJ = "SCONJ"
	VERB  = "VERB"
	X     = "X"
)

// Token is a single annotated word.
type Token struct {
	Text  string // literal form as it appeared in the text
	Lemma string // normalized base form
	POS   string // Universal POS tag
	Stop  bool   // stop-word flag
}

// Sentence is an ordered sequence of tokens.
type Sentence []Token

// Annotator turns a document into annotated sentences.
// Implementations must be safe for concurrent use once constructed.
type Annotator interface {
	Annotate(text string) ([]Sentence, error)
}
