package index

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"govchat/internal/domain"
)

// epsilon guards the cosine denominator against all-zero vectors.
const epsilon = 1e-10

// Index is an in-memory similarity index over service documents. The
// corpus is small, so search is a brute-force cosine scan. The build
// phase (Add calls) must finish before Search is exposed to concurrent
// readers; after that the index is read-only and lock-free reads would
// be safe, the RWMutex just keeps misuse from corrupting anything.
type Index struct {
	mu          sync.RWMutex
	dimension   int
	fingerprint string
	vectors     [][]float64
	documents   []domain.Document
}

// New creates an empty index accepting vectors of the given dimension.
func New(dimension int) (*Index, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid index dimension %d", dimension)
	}
	return &Index{dimension: dimension}, nil
}

// Dimension returns the vector width the index was declared with.
func (x *Index) Dimension() int { return x.dimension }

// Fingerprint returns the corpus fingerprint the index was built from,
// empty if none was recorded.
func (x *Index) Fingerprint() string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.fingerprint
}

// SetFingerprint records the fingerprint of the corpus the index was
// built from, so a persisted index can be detected as stale when the
// corpus changes.
func (x *Index) SetFingerprint(fp string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.fingerprint = fp
}

// Add appends a document and its vector to the index.
func (x *Index) Add(vector []float64, doc domain.Document) error {
	if len(vector) != x.dimension {
		return fmt.Errorf("%w: got %d, index holds %d", domain.ErrDimensionMismatch, len(vector), x.dimension)
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	x.vectors = append(x.vectors, vector)
	x.documents = append(x.documents, doc)
	return nil
}

// Search returns up to k documents ranked by similarity to the query
// vector, most similar first. Scores are the cosine-distance
// conversion 1/(1+d); the conversion is monotone in cosine similarity,
// so ranking is unchanged by it. Ties keep insertion order. An empty
// index yields an empty result, never an error.
func (x *Index) Search(vector []float64, k int) ([]domain.SearchResult, error) {
	if len(vector) != x.dimension {
		return nil, fmt.Errorf("%w: query has %d, index holds %d", domain.ErrDimensionMismatch, len(vector), x.dimension)
	}
	if k <= 0 {
		k = 3
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	results := make([]domain.SearchResult, len(x.vectors))
	for i := range x.vectors {
		results[i] = domain.SearchResult{
			Document: x.documents[i],
			Score:    similarityScore(cosine(vector, x.vectors[i])),
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// DocumentCount reports the number of indexed documents.
func (x *Index) DocumentCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.documents)
}

// similarityScore converts a cosine similarity into the score exposed
// on search results: 1/(1+d) where d = 1-cos is the cosine distance.
// Identical vectors score 1.0, orthogonal vectors score exactly 0.5.
func similarityScore(cos float64) float64 {
	return 1 / (1 + (1 - cos))
}

func cosine(a, b []float64) float64 {
	dot, na, nb := 0.0, 0.0, 0.0
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		den = epsilon
	}
	return dot / den
}
