package textrank

// Vocabulary assigns each distinct lemma a dense index in first-seen order.
type Vocabulary struct {
	index map[string]int
	words []string
}

// BuildVocabulary scans lemmas in document order across all sentences.
func BuildVocabulary(sentences [][]string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, sent := range sentences {
		for _, w := range sent {
			if _, ok := v.index[w]; ok {
				continue
			}
			v.index[w] = len(v.words)
			v.words = append(v.words, w)
		}
	}
	return v
}

// Len returns the vocabulary size.
func (v *Vocabulary) Len() int { return len(v.words) }

// Index returns the index of a lemma.
func (v *Vocabulary) Index(word string) (int, bool) {
	i, ok := v.index[word]
	return i, ok
}

// Word returns the lemma at index i.
func (v *Vocabulary) Word(i int) string { return v.words[i] }

// Words returns all lemmas in index order. The slice must not be modified.
func (v *Vocabulary) Words() []string { return v.words }
