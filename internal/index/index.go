package index

import (
	"sync/atomic"

	"ocean-rag/internal/models"
)

// Entry pairs a chunk with its embedding vector.
type Entry struct {
	Chunk     models.Chunk
	Embedding []float32
}

// Index is the in-memory vector index for one document. It is immutable
// once built; a new document always gets a fresh Index.
type Index struct {
	entries []Entry
}

// Build constructs a fresh index from the given entries. The caller is
// expected to drop any prior index; indexes are never merged or mutated.
func Build(entries []Entry) *Index {
	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return &Index{entries: owned}
}

func (idx *Index) IsEmpty() bool {
	return idx == nil || len(idx.entries) == 0
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Entries returns the index contents in insertion order. The slice must
// be treated as read-only.
func (idx *Index) Entries() []Entry {
	if idx == nil {
		return nil
	}
	return idx.entries
}

// Store holds the currently active index and swaps it atomically, so a
// rebuild never exposes a partially populated index to in-flight readers:
// they observe either the old index or the new one in its entirety.
type Store struct {
	current atomic.Pointer[Index]
}

func NewStore() *Store {
	return &Store{}
}

// Publish replaces the active index. The new index must be fully built
// before it is published.
func (s *Store) Publish(idx *Index) {
	s.current.Store(idx)
}

// Current returns the active index, or nil when no document is indexed.
func (s *Store) Current() *Index {
	return s.current.Load()
}

// Clear drops the active index, e.g. when the document is removed.
func (s *Store) Clear() {
	s.current.Store(nil)
}
