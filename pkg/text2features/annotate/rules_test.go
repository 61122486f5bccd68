package annotate

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/text2features/pkg/text2features/lexicon"
)

func texts(sentences [][]word) [][]string {
	out := make([][]string, len(sentences))
	for i, s := range sentences {
		for _, w := range s {
			out[i] = append(out[i], w.text)
		}
	}
	return out
}

func TestScanSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "two sentences",
			input: "Cats chase mice. Dogs chase cats!",
			want:  [][]string{{"Cats", "chase", "mice"}, {"Dogs", "chase", "cats"}},
		},
		{
			name:  "abbreviation keeps sentence",
			input: "Mr. Smith met Dr. Jones. They talked.",
			want:  [][]string{{"Mr", "Smith", "met", "Dr", "Jones"}, {"They", "talked"}},
		},
		{
			name:  "initials keep sentence",
			input: "J. R. Tolkien wrote books.",
			want:  [][]string{{"J", "R", "Tolkien", "wrote", "books"}},
		},
		{
			name:  "blank line breaks",
			input: "Heading\n\nBody text here",
			want:  [][]string{{"Heading"}, {"Body", "text", "here"}},
		},
		{
			name:  "single newline does not break",
			input: "wrapped\nline",
			want:  [][]string{{"wrapped", "line"}},
		},
		{
			name:  "decimal number stays in sentence",
			input: "Growth was 3.5 percent today",
			want:  [][]string{{"Growth", "was", "3", "5", "percent", "today"}},
		},
		{
			name:  "quote after period",
			input: `He said "stop." Then left.`,
			want:  [][]string{{"He", "said", "stop"}, {"Then", "left"}},
		},
		{
			name:  "possessive and hyphens",
			input: "--John's state-of-the-art--- tool",
			want:  [][]string{{"John", "state-of-the-art", "tool"}},
		},
		{
			name:  "empty",
			input: "  ... !!  ",
			want:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(scan(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scan(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		text    string
		initial bool
		prev    string
		want    string
	}{
		{"the", true, "", DET},
		{"Paris", false, "in", PROPN},
		{"Market", true, "", NOUN},
		{"NASA", true, "", PROPN},
		{"2024", false, "in", NUM},
		{"run", false, "to", VERB},
		{"work", false, "they", VERB},
		{"quickly", false, "ran", ADV},
		{"running", false, "is", VERB},
		{"dangerous", false, "is", ADJ},
		{"economy", false, "the", NOUN},
	}

	for _, tt := range tests {
		w := word{text: tt.text, initial: tt.initial}
		low := lowerASCII(tt.text)
		if got := tag(w, low, tt.prev); got != tt.want {
			t.Errorf("tag(%q, prev=%q) = %s, want %s", tt.text, tt.prev, got, tt.want)
		}
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestLemmatize(t *testing.T) {
	lex := lexicon.New()
	lex.Add("email", []string{"e-mail", "emails"})
	a := NewRuleAnnotator(nil, lex)

	tests := []struct {
		word string
		pos  string
		want string
	}{
		{"companies", NOUN, "company"},
		{"boxes", NOUN, "box"},
		{"churches", NOUN, "church"},
		{"markets", NOUN, "market"},
		{"business", NOUN, "business"},
		{"virus", NOUN, "virus"},
		{"analysis", NOUN, "analysis"},
		{"children", NOUN, "child"},
		{"went", VERB, "go"},
		{"stopped", VERB, "stop"},
		{"running", VERB, "run"},
		{"studied", VERB, "study"},
		{"watches", VERB, "watch"},
		{"e-mail", NOUN, "email"},
		{"london", PROPN, "london"},
	}
	for _, tt := range tests {
		if got := a.lemmatize(tt.word, tt.pos); got != tt.want {
			t.Errorf("lemmatize(%q, %s) = %q, want %q", tt.word, tt.pos, got, tt.want)
		}
	}
}

func TestRuleAnnotatorAnnotate(t *testing.T) {
	a := NewRuleAnnotator([]string{"Mr.", " Banks "}, nil)

	sentences, err := a.Annotate("Mr. Brown sells houses. The banks lend money to Brown.")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}

	first := sentences[0]
	want := []Token{
		// mixed-case sentence opener reads as a common noun
		{Text: "Mr", Lemma: "mr", POS: NOUN, Stop: true},
		{Text: "Brown", Lemma: "brown", POS: PROPN, Stop: false},
		{Text: "sells", Lemma: "sell", POS: NOUN, Stop: false},
		{Text: "houses", Lemma: "house", POS: NOUN, Stop: false},
	}
	if diff := cmp.Diff(Sentence(want), first); diff != "" {
		t.Errorf("first sentence mismatch (-want +got):\n%s", diff)
	}

	second := sentences[1]
	if !second[0].Stop || second[0].POS != DET {
		t.Errorf("'The' should be a stop-word determiner, got %+v", second[0])
	}
	if !second[1].Stop {
		t.Errorf("extra stop-word 'banks' should be flagged, got %+v", second[1])
	}
	if second[5].POS != PROPN {
		t.Errorf("'Brown' inside the sentence tagged %s", second[5].POS)
	}
}

func TestRuleAnnotatorEmpty(t *testing.T) {
	a := NewRuleAnnotator(nil, nil)
	for _, input := range []string{"", "   ", "\n\n"} {
		got, err := a.Annotate(input)
		if err != nil {
			t.Fatalf("Annotate(%q): %v", input, err)
		}
		if len(got) != 0 {
			t.Errorf("Annotate(%q) = %v, want no sentences", input, got)
		}
	}
}

func TestRuleAnnotatorNormalizesUnicode(t *testing.T) {
	a := NewRuleAnnotator(nil, nil)
	// combining acute accent
	got, err := a.Annotate("The cafe\u0301 opened.")
	if err != nil {
		t.Fatal(err)
	}
	if got[0][1].Lemma != "caf\u00e9" {
		t.Errorf("expected NFC lemma café, got %q", got[0][1].Lemma)
	}
}

func TestRuleAnnotatorConcurrent(t *testing.T) {
	a := NewRuleAnnotator([]string{"extra"}, nil)
	text := "Graphs rank words. Words link graphs in windows."

	want, _ := a.Annotate(text)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := a.Annotate(text)
			if err != nil {
				t.Error(err)
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent result differs (-want +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

func TestIsStopword(t *testing.T) {
	a := NewRuleAnnotator([]string{"Mrs."}, nil)
	if !a.IsStopword("mrs") || !a.IsStopword("THE") {
		t.Error("expected built-in and extra stop-words")
	}
	if a.IsStopword("graph") {
		t.Error("graph should not be a stop-word")
	}
}

func TestRuleAnnotatorSnowball(t *testing.T) {
	a := NewRuleAnnotator(nil, nil, WithSnowball())

	sentences, err := a.Annotate("The constraints bind systems.")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if len(sentences) != 1 || len(sentences[0]) != 4 {
		t.Fatalf("unexpected shape: %+v", sentences)
	}
	if got := sentences[0][1].Lemma; got != "constraint" {
		t.Errorf("stem of constraints = %q", got)
	}
	if got := sentences[0][3].Lemma; got != "system" {
		t.Errorf("stem of systems = %q", got)
	}
	if sentences[0][0].Lemma != "the" || !sentences[0][0].Stop {
		t.Errorf("closed-class words are not stemmed: %+v", sentences[0][0])
	}

	if !a.IsStopword("yourselves") {
		t.Error("expected the Snowball stop-word list to apply")
	}
	if NewRuleAnnotator(nil, nil).IsStopword("yourselves") {
		t.Error("Snowball stop-words applied without the option")
	}
}
