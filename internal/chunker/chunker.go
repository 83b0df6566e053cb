package chunker

import (
	"fmt"

	"ocean-rag/internal/models"
)

// Chunk splits text into overlapping fixed-size windows. Every chunk
// except possibly the last is exactly size characters long; consecutive
// chunks share overlap characters, so concatenating chunk[0] with each
// following chunk's text past the overlap reconstructs the input exactly.
func Chunk(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, models.WrapError(models.ErrInvalidParameter,
			fmt.Errorf("chunk size %d, overlap %d: need 0 <= overlap < size", size, overlap))
	}
	if len(text) == 0 {
		return nil, nil
	}
	if size >= len(text) {
		return []string{text}, nil
	}

	stride := size - overlap
	var chunks []string
	offset := 0
	for offset+size <= len(text) {
		chunks = append(chunks, text[offset:offset+size])
		offset += stride
	}
	// The last full window ended at offset-stride+size. Anything beyond it
	// goes into one trailing chunk starting at the next scheduled offset,
	// keeping the usual overlap with its predecessor.
	if end := offset - stride + size; end < len(text) {
		chunks = append(chunks, text[offset:])
	}
	return chunks, nil
}

// ToChunks wraps chunk strings in models.Chunk records with their
// sequence index.
func ToChunks(texts []string) []models.Chunk {
	chunks := make([]models.Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = models.Chunk{Text: t, Seq: i}
	}
	return chunks
}
