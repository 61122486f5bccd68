package textrank

// Pair is an unordered co-occurrence of two distinct lemmas.
// A is the lemma seen first in the window.
type Pair struct {
	A, B string
}

// TokenPairs collects the co-occurrence pairs of every sentence: each lemma
// is paired with the next window-1 lemmas of its sentence. Duplicates
// (in either order) collapse to the first occurrence, and pairs of a lemma
// with itself are dropped. A window below 2 produces no pairs.
func TokenPairs(sentences [][]string, window int) []Pair {
	seen := make(map[Pair]struct{})
	var pairs []Pair
	for _, sent := range sentences {
		for i, w := range sent {
			for j := i + 1; j < i+window && j < len(sent); j++ {
				other := sent[j]
				if other == w {
					continue
				}
				p, rev := Pair{A: w, B: other}, Pair{A: other, B: w}
				if _, ok := seen[p]; ok {
					continue
				}
				if _, ok := seen[rev]; ok {
					continue
				}
				seen[p] = struct{}{}
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}

// Matrix is a dense square matrix stored row-major.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix returns an n×n zero matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int { return m.n }

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set assigns the cell at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// BuildGraph returns the symmetric co-occurrence matrix over the vocabulary:
// 1 in both cells of every pair, 0 elsewhere, zero diagonal.
// Pairs with a lemma outside the vocabulary are ignored.
func BuildGraph(vocab *Vocabulary, pairs []Pair) *Matrix {
	g := NewMatrix(vocab.Len())
	for _, p := range pairs {
		i, ok := vocab.Index(p.A)
		if !ok {
			continue
		}
		j, ok := vocab.Index(p.B)
		if !ok || i == j {
			continue
		}
		g.Set(i, j, 1)
		g.Set(j, i, 1)
	}
	return g
}

// NormalizeColumns returns a copy with every column divided by its sum.
// Columns summing to zero stay zero: isolated lemmas pass no score on.
func (m *Matrix) NormalizeColumns() *Matrix {
	out := NewMatrix(m.n)
	for j := 0; j < m.n; j++ {
		sum := 0.0
		for i := 0; i < m.n; i++ {
			sum += m.At(i, j)
		}
		if sum == 0 {
			continue
		}
		for i := 0; i < m.n; i++ {
			out.Set(i, j, m.At(i, j)/sum)
		}
	}
	return out
}

// MulVec computes m·v into dst, which must have length Size().
func (m *Matrix) MulVec(dst, v []float64) {
	for i := 0; i < m.n; i++ {
		row := m.data[i*m.n : (i+1)*m.n]
		sum := 0.0
		for j, x := range row {
			sum += x * v[j]
		}
		dst[i] = sum
	}
}
