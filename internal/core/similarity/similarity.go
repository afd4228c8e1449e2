// Package similarity provides the pure vector maths used for semantic
// retrieval: cosine similarity, normalisation, distance and top-k ranking.
// Everything here is stateless and deterministic.
package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// Cosine returns the cosine similarity of two vectors: (a·b)/(|a||b|).
// Vectors of different lengths are a hard failure. A zero or empty vector
// yields 0 rather than dividing by zero.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("cosine: %w (%d vs %d)", domain.ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// CosineNormalized returns the dot product of two vectors. It is only valid
// when both inputs are already unit-normalised; it exists as a performance
// variant, not a general replacement for Cosine.
func CosineNormalized(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// Normalize returns a copy of v divided by its Euclidean norm.
// A zero vector is returned unchanged.
func Normalize(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if norm == 0 {
		copy(out, v)
		return out
	}
	norm = math.Sqrt(norm)
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// Euclidean returns the L2 distance between two vectors. Vectors of
// different lengths are a hard failure, as with Cosine.
func Euclidean(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("euclidean: %w (%d vs %d)", domain.ErrDimensionMismatch, len(a), len(b))
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// TopK ranks candidates by cosine similarity to the query and returns the
// first k, fewer if there are fewer candidates. The sort is stable, so equal
// scores keep their original candidate order. Candidates whose embedding
// length differs from the query are skipped.
func TopK(query []float32, candidates []domain.EmbeddingDocument, k int) []domain.ScoredDocument {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}

	scored := make([]domain.ScoredDocument, 0, len(candidates))
	for i := range candidates {
		score, err := Cosine(query, candidates[i].Embedding)
		if err != nil {
			continue
		}
		scored = append(scored, domain.ScoredDocument{
			Document: candidates[i],
			Score:    score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

// ToPercentage converts a similarity score into a display percentage.
// Scores outside [0, 1] are clamped, not rejected.
func ToPercentage(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score * 100)
}
