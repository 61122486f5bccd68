// Package selection turns ranked candidates into a bounded keyword list.
//
// The policy is layered: a score threshold picks the primary set, a
// minimum-count fallback replaces it with the top candidates by score when it
// is too small, and a maximum-count cap truncates it when it is too large.
// Truncation keeps candidate order (first-seen order in the document), it
// does not re-sort by score.
package selection

import (
	"math"
	"slices"
)

// Unlimited disables the maximum-count cap.
const Unlimited = math.MaxInt

// Scored is a candidate keyword with its ranking score.
type Scored struct {
	Word  string
	Score float64
}

// Policy holds the selection thresholds.
type Policy struct {
	MinScore  float64 // primary threshold (inclusive)
	MinNumber int     // fallback to top-N by score below this count
	MaxNumber int     // cap on the primary set, Unlimited for none
}

// DefaultPolicy returns the documented defaults: threshold 1.0, no minimum,
// no maximum.
func DefaultPolicy() Policy {
	return Policy{
		MinScore:  1.0,
		MinNumber: 0,
		MaxNumber: Unlimited,
	}
}

// Select applies the policy to candidates given in first-seen order.
// The result is never nil.
func (p Policy) Select(candidates []Scored) []string {
	primary := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= p.MinScore {
			primary = append(primary, c.Word)
		}
	}

	switch {
	case len(primary) < p.MinNumber:
		return topByScore(candidates, p.MinNumber)
	case len(primary) > p.MaxNumber:
		return primary[:max(p.MaxNumber, 0)]
	default:
		return primary
	}
}

// topByScore returns up to n words by descending score. Ties keep input order.
func topByScore(candidates []Scored, n int) []string {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	n = min(n, len(sorted))
	words := make([]string, n)
	for i := range n {
		words[i] = sorted[i].Word
	}
	return words
}
