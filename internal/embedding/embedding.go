package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"ocean-rag/internal/config"
	"ocean-rag/internal/models"
)

// Embedder is the client adapter the RAG core uses to embed chunk
// batches at ingestion time and single queries at question time. Every
// call is a fresh network request; nothing is cached.
type Embedder interface {
	// EmbedBatch embeds all chunks in one batched request. The result has
	// the same length and order as the input, or the whole call fails.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// batchSize is large enough that a whole document's chunks go out in a
// single round trip instead of one request per chunk.
const batchSize = 2048

// LLMEmbedder adapts a langchaingo embedder to the Embedder contract,
// translating every failure into an embedding failure carrying the cause.
type LLMEmbedder struct {
	impl embeddings.Embedder
}

// NewGoogleAIEmbedder builds the default embedder against the hosted
// Gemini embedding model.
func NewGoogleAIEmbedder(ctx context.Context, cfg *config.LLMConfig) (*LLMEmbedder, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Key),
		googleai.WithDefaultEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return newLLMEmbedder(llm)
}

// NewOpenAIEmbedder targets an OpenAI-compatible embedding endpoint.
func NewOpenAIEmbedder(cfg *config.LLMConfig) (*LLMEmbedder, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return newLLMEmbedder(llm)
}

func newLLMEmbedder(client embeddings.EmbedderClient) (*LLMEmbedder, error) {
	impl, err := embeddings.NewEmbedder(client,
		embeddings.WithBatchSize(batchSize),
		// Chunks go to the model verbatim so the retrieved text matches
		// the indexed text exactly.
		embeddings.WithStripNewLines(false),
	)
	if err != nil {
		return nil, err
	}
	return &LLMEmbedder{impl: impl}, nil
}

// NewFromEmbedder wraps an existing langchaingo embedder.
func NewFromEmbedder(impl embeddings.Embedder) *LLMEmbedder {
	return &LLMEmbedder{impl: impl}
}

func (e *LLMEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vectors, err := e.impl.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, models.WrapError(models.ErrEmbedding, err)
	}
	if len(vectors) != len(texts) {
		return nil, models.WrapError(models.ErrEmbedding,
			fmt.Errorf("requested %d embeddings, got %d", len(texts), len(vectors)))
	}
	return vectors, nil
}

func (e *LLMEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.impl.EmbedQuery(ctx, text)
	if err != nil {
		return nil, models.WrapError(models.ErrEmbedding, err)
	}
	return vector, nil
}
