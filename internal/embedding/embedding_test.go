package embedding

import (
	"context"
	"errors"
	"testing"

	"ocean-rag/internal/models"
)

// fakeImpl stands in for the langchaingo embedder behind the adapter.
type fakeImpl struct {
	batchErr error
	queryErr error
	short    bool
}

func (f *fakeImpl) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	n := len(texts)
	if f.short {
		n--
	}
	vectors := make([][]float32, n)
	for i := range vectors {
		vectors[i] = []float32{float32(i)}
	}
	return vectors, nil
}

func (f *fakeImpl) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []float32{float32(len(text))}, nil
}

func TestEmbedBatchPreservesOrder(t *testing.T) {
	e := NewFromEmbedder(&fakeImpl{})
	vectors, err := e.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(vectors))
	}
	for i, v := range vectors {
		if v[0] != float32(i) {
			t.Errorf("vector %d out of order: %v", i, v)
		}
	}
}

func TestEmbedBatchFailureIsAllOrNothing(t *testing.T) {
	boom := errors.New("service unavailable")
	e := NewFromEmbedder(&fakeImpl{batchErr: boom})
	vectors, err := e.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	if !errors.Is(err, models.ErrEmbedding) {
		t.Fatalf("expected ErrEmbedding, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Error("original cause not carried by the embedding failure")
	}
	if vectors != nil {
		t.Error("partial results returned on batch failure")
	}
}

func TestEmbedBatchCountMismatch(t *testing.T) {
	e := NewFromEmbedder(&fakeImpl{short: true})
	if _, err := e.EmbedBatch(context.Background(), []string{"a", "b"}); !errors.Is(err, models.ErrEmbedding) {
		t.Errorf("expected ErrEmbedding on short response, got %v", err)
	}
}

func TestEmbedBatchEmptyInput(t *testing.T) {
	e := NewFromEmbedder(&fakeImpl{})
	vectors, err := e.EmbedBatch(context.Background(), nil)
	if err != nil || vectors != nil {
		t.Errorf("empty input should be a no-op, got %v, %v", vectors, err)
	}
}

func TestEmbedQueryFailure(t *testing.T) {
	boom := errors.New("timeout")
	e := NewFromEmbedder(&fakeImpl{queryErr: boom})
	if _, err := e.EmbedQuery(context.Background(), "q"); !errors.Is(err, models.ErrEmbedding) {
		t.Errorf("expected ErrEmbedding, got %v", err)
	}
}
