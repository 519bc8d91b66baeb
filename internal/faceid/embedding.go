// Package faceid compares facial embeddings extracted by the external
// embedding service against a worker's enrolled references.
package faceid

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EmbeddingDim is the vector length produced by the embedding model.
const EmbeddingDim = 128

// MatchThreshold is the model's "same person" Euclidean distance cutoff.
// It is the model convention, not a tunable; the service consumes the
// boundary as a black box.
const MatchThreshold = 0.6

// Embedding is one fixed-length facial feature vector.
type Embedding []float64

// MarshalEmbeddings serializes enrolled reference vectors for blob storage.
// Layout: uint32 count, uint32 dimension, then count*dimension little-endian
// float64 values.
func MarshalEmbeddings(embeddings []Embedding) ([]byte, error) {
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings to serialize")
	}
	for i, emb := range embeddings {
		if len(emb) != EmbeddingDim {
			return nil, fmt.Errorf("embedding %d has dimension %d, want %d", i, len(emb), EmbeddingDim)
		}
	}

	buf := make([]byte, 8+len(embeddings)*EmbeddingDim*8)
	binary.LittleEndian.PutUint32(buf[0:], uint32(len(embeddings)))
	binary.LittleEndian.PutUint32(buf[4:], EmbeddingDim)
	offset := 8
	for _, emb := range embeddings {
		for _, v := range emb {
			binary.LittleEndian.PutUint64(buf[offset:], math.Float64bits(v))
			offset += 8
		}
	}
	return buf, nil
}

// UnmarshalEmbeddings restores reference vectors from blob storage.
func UnmarshalEmbeddings(data []byte) ([]Embedding, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("embedding blob too short: %d bytes", len(data))
	}
	count := binary.LittleEndian.Uint32(data[0:])
	dim := binary.LittleEndian.Uint32(data[4:])
	if dim != EmbeddingDim {
		return nil, fmt.Errorf("embedding blob has dimension %d, want %d", dim, EmbeddingDim)
	}
	want := 8 + int(count)*int(dim)*8
	if len(data) != want {
		return nil, fmt.Errorf("embedding blob has %d bytes, want %d", len(data), want)
	}

	embeddings := make([]Embedding, count)
	offset := 8
	for i := range embeddings {
		emb := make(Embedding, dim)
		for j := range emb {
			emb[j] = math.Float64frombits(binary.LittleEndian.Uint64(data[offset:]))
			offset += 8
		}
		embeddings[i] = emb
	}
	return embeddings, nil
}

// Distance returns the Euclidean distance between two embeddings.
func Distance(a, b Embedding) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
