package annotate

import (
	"strings"
	"unicode"
)

// word is a raw token before tagging.
type word struct {
	text    string
	initial bool // first word of its sentence
}

// scan splits text into sentences of raw words.
//
// Words are runs of letters, digits, hyphens and apostrophes. A sentence ends
// at '.', '!' or '?' followed by whitespace (unless the period closes a known
// abbreviation or a single-letter initial) and at blank lines.
func scan(text string) [][]word {
	var (
		sentences [][]word
		current   []word
		buf       strings.Builder
		pending   bool // terminal punctuation seen, waiting for whitespace
		newlines  int
	)

	flushWord := func() {
		if buf.Len() == 0 {
			return
		}
		w := cleanWord(buf.String())
		buf.Reset()
		if w == "" {
			return
		}
		current = append(current, word{text: w, initial: len(current) == 0})
	}
	flushSentence := func() {
		flushWord()
		if len(current) > 0 {
			sentences = append(sentences, current)
			current = nil
		}
		pending = false
	}

	for _, r := range text {
		switch {
		case isWordRune(r):
			buf.WriteRune(r)
			pending = false
			newlines = 0
		case r == '\n':
			newlines++
			if newlines >= 2 || pending {
				flushSentence()
			} else {
				flushWord()
			}
		case unicode.IsSpace(r):
			if pending {
				flushSentence()
			} else {
				flushWord()
			}
		case r == '.':
			last := strings.ToLower(buf.String())
			flushWord()
			if !abbreviations[last] && !isInitial(last) {
				pending = true
			}
			newlines = 0
		case r == '!' || r == '?':
			flushWord()
			pending = true
			newlines = 0
		default:
			// quotes, brackets and other punctuation end a word but keep any
			// pending sentence break
			flushWord()
			newlines = 0
		}
	}
	flushSentence()

	return sentences
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' || r == '’'
}

func isInitial(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}

// cleanWord trims hyphens and apostrophes from the edges, collapses repeated
// hyphens and strips the possessive suffix.
func cleanWord(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	s = strings.Trim(s, "-'")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	switch lower := strings.ToLower(s); {
	case lower == "can't":
		return s[:3]
	case lower == "won't":
		return "will"
	case strings.HasSuffix(lower, "'s"):
		s = s[:len(s)-2]
	case strings.HasSuffix(lower, "n't"):
		s = s[:len(s)-3]
	}
	return strings.Trim(s, "-'")
}
