package retriever

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"ocean-rag/internal/index"
	"ocean-rag/internal/models"
)

// ScoredEntry is an index entry with its similarity to the query. It is
// transient, produced per retrieval and never stored.
type ScoredEntry struct {
	Entry index.Entry
	Score float64
}

// CosineSimilarity returns dot(a,b)/(|a||b|) in [-1, 1]. Vectors of
// unequal length and zero-magnitude vectors score 0: a malformed or empty
// vector is never "similar" to anything.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score ranks every index entry against the query embedding, highest
// similarity first. Ties keep the index insertion order. An entry whose
// embedding length differs from the query's scores 0 rather than failing
// the whole retrieval.
func Score(query []float32, idx *index.Index) []ScoredEntry {
	entries := idx.Entries()
	scored := make([]ScoredEntry, 0, len(entries))
	for _, e := range entries {
		if len(e.Embedding) != len(query) {
			log.Debug().
				Int("chunk", e.Chunk.Seq).
				Int("entry_dim", len(e.Embedding)).
				Int("query_dim", len(query)).
				Msg("embedding dimension mismatch, scoring 0")
		}
		scored = append(scored, ScoredEntry{Entry: e, Score: CosineSimilarity(query, e.Embedding)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Retrieve returns the topK most similar chunks in descending score
// order. topK is clamped to the index size; a non-positive topK falls
// back to the default. An empty index yields an empty result, never an
// error.
func Retrieve(query []float32, idx *index.Index, topK int) []models.Chunk {
	if idx.IsEmpty() {
		return nil
	}
	if topK <= 0 {
		topK = models.DefaultTopK
	}
	scored := Score(query, idx)
	if topK > len(scored) {
		topK = len(scored)
	}
	chunks := make([]models.Chunk, topK)
	for i := 0; i < topK; i++ {
		chunks[i] = scored[i].Entry.Chunk
	}
	return chunks
}
