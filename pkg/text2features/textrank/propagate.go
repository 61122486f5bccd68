package textrank

import "math"

// Propagation holds the outcome of score propagation.
type Propagation struct {
	Scores     []float64 // one score per vocabulary index
	Iterations int       // iterations run, at most the step cap
	Converged  bool      // stopped on the total-change threshold
}

// Propagate runs the damped power iteration over a column-normalized graph:
//
//	pr ← (1-d) + d·(G·pr)
//
// starting from pr = 1 for every node. It stops when the total score changes
// by less than minDiff between iterations, or after steps iterations.
func Propagate(g *Matrix, d, minDiff float64, steps int) Propagation {
	n := g.Size()
	pr := make([]float64, n)
	for i := range pr {
		pr[i] = 1
	}
	next := make([]float64, n)

	res := Propagation{}
	previous := 0.0
	for res.Iterations < steps {
		g.MulVec(next, pr)
		total := 0.0
		for i := range next {
			next[i] = (1 - d) + d*next[i]
			total += next[i]
		}
		pr, next = next, pr
		res.Iterations++

		if math.Abs(previous-total) < minDiff {
			res.Converged = true
			break
		}
		previous = total
	}

	res.Scores = pr
	return res
}
