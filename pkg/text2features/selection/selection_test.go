package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scored(pairs ...any) []Scored {
	out := make([]Scored, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Scored{Word: pairs[i].(string), Score: pairs[i+1].(float64)})
	}
	return out
}

func TestSelectThreshold(t *testing.T) {
	candidates := scored("alpha", 0.4, "beta", 1.2, "gamma", 1.0, "delta", 0.99)

	got := DefaultPolicy().Select(candidates)
	want := []string{"beta", "gamma"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectMinNumberFallback(t *testing.T) {
	// Only one candidate passes the threshold; fallback takes the top 5 by
	// score and ignores the threshold. Ties keep first-seen order.
	candidates := scored(
		"a", 0.5,
		"b", 1.5,
		"c", 0.7,
		"d", 0.7,
		"e", 0.2,
		"f", 0.9,
		"g", 0.7,
	)
	p := Policy{MinScore: 1.0, MinNumber: 5, MaxNumber: Unlimited}

	got := p.Select(candidates)
	want := []string{"b", "f", "c", "d", "g"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectMinNumberLargerThanCandidates(t *testing.T) {
	candidates := scored("a", 0.1, "b", 0.3)
	p := Policy{MinScore: 1.0, MinNumber: 5, MaxNumber: Unlimited}

	got := p.Select(candidates)
	want := []string{"b", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectMaxNumberKeepsFirstSeenOrder(t *testing.T) {
	// The highest scores are at the end; truncation must still keep the
	// first three in candidate order.
	candidates := scored("a", 1.1, "b", 1.2, "c", 1.3, "d", 5.0, "e", 9.0)
	p := Policy{MinScore: 1.0, MinNumber: 0, MaxNumber: 3}

	got := p.Select(candidates)
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectMinNumberWinsOverMaxNumber(t *testing.T) {
	candidates := scored("a", 0.1, "b", 0.2, "c", 0.3, "d", 0.4)
	p := Policy{MinScore: 1.0, MinNumber: 3, MaxNumber: 1}

	got := p.Select(candidates)
	if len(got) != 3 {
		t.Fatalf("expected min-number fallback to return 3 keywords, got %v", got)
	}
}

func TestSelectMaxNumberZero(t *testing.T) {
	candidates := scored("a", 2.0, "b", 2.0)
	p := Policy{MinScore: 1.0, MaxNumber: 0}

	got := p.Select(candidates)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %#v", got)
	}
}

func TestSelectEmpty(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "defaults", policy: DefaultPolicy()},
		{name: "min number", policy: Policy{MinScore: 1, MinNumber: 4, MaxNumber: Unlimited}},
		{name: "max number", policy: Policy{MinScore: 0, MaxNumber: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.Select(nil)
			if got == nil || len(got) != 0 {
				t.Errorf("Select(nil) = %#v, want empty slice", got)
			}
		})
	}
}

func TestSelectDeterministic(t *testing.T) {
	candidates := scored("x", 0.3, "y", 0.3, "z", 0.3, "w", 0.3)
	p := Policy{MinScore: 1.0, MinNumber: 2, MaxNumber: Unlimited}

	first := p.Select(candidates)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, p.Select(candidates)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff([]string{"x", "y"}, first); diff != "" {
		t.Errorf("tie-break mismatch (-want +got):\n%s", diff)
	}
}
