package reembed

import "math"

// NormalizeVector scales a vector to unit length. Zero vectors are returned
// unchanged. Normalized vectors make cosine distance equivalent to a plain
// dot product regardless of what magnitude the embedding model emits.
func NormalizeVector(vector []float32) []float32 {
	if len(vector) == 0 {
		return vector
	}

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}

	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return vector
	}

	normalized := make([]float32, len(vector))
	for i, v := range vector {
		normalized[i] = float32(float64(v) / norm)
	}
	return normalized
}
