package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"ocean-rag/internal/chunker"
	"ocean-rag/internal/config"
	"ocean-rag/internal/embedding"
	"ocean-rag/internal/helper"
	"ocean-rag/internal/index"
	"ocean-rag/internal/llmservice"
	"ocean-rag/internal/models"
	"ocean-rag/internal/parser"
	"ocean-rag/internal/retriever"
)

// Mode selects how a query is answered. The caller dispatches the mode
// explicitly; the composer never infers it from index emptiness.
type Mode struct {
	idx *index.Index
}

// Grounded answers strictly from the given document index.
func Grounded(idx *index.Index) Mode {
	return Mode{idx: idx}
}

// Unrestricted answers as the ocean-intelligence assistant without any
// document grounding.
func Unrestricted() Mode {
	return Mode{}
}

func (m Mode) grounded() bool { return m.idx != nil }

// RAG wires extraction, chunking, embedding, retrieval and generation
// into the two pipelines of the core: document ingestion and querying.
type RAG struct {
	extractor parser.Extractor
	embedder  embedding.Embedder
	generator llmservice.Generator
	cfg       *config.Config
}

func NewRAG(extractor parser.Extractor, embedder embedding.Embedder, generator llmservice.Generator, cfg *config.Config) *RAG {
	return &RAG{extractor: extractor, embedder: embedder, generator: generator, cfg: cfg}
}

// Ingest runs extract -> chunk -> embed -> build and returns the fresh
// index. Nothing is published on failure; the caller swaps the returned
// index into its store once it is complete.
func (r *RAG) Ingest(ctx context.Context, data []byte, mimeType string) (*index.Index, error) {
	docID, err := helper.GenerateUUID()
	if err != nil {
		return nil, err
	}

	text, err := r.extractor.ExtractText(data, mimeType)
	if err != nil {
		return nil, err
	}

	texts, err := chunker.Chunk(text, r.cfg.RAG.ChunkSize, r.cfg.RAG.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	chunks := chunker.ToChunks(texts)
	if len(chunks) == 0 {
		log.Info().Str("doc_id", docID).Msg("Document produced no chunks")
		return index.Build(nil), nil
	}

	embedCtx, cancel := context.WithTimeout(ctx, r.cfg.RequestTimeout())
	defer cancel()
	vectors, err := r.embedder.EmbedBatch(embedCtx, texts)
	if err != nil {
		return nil, err
	}

	entries := make([]index.Entry, len(chunks))
	for i := range chunks {
		entries[i] = index.Entry{Chunk: chunks[i], Embedding: vectors[i]}
	}

	log.Info().Str("doc_id", docID).Int("chunks", len(entries)).Msg("Document indexed")
	return index.Build(entries), nil
}

// Query answers the user's question in the requested language. Grounded
// mode embeds the query, retrieves the most similar chunks and composes a
// context-bound answer; unrestricted mode generates freely under the
// assistant persona.
func (r *RAG) Query(ctx context.Context, query string, mode Mode, lang models.Language) (*models.Answer, error) {
	if !mode.grounded() {
		content, err := r.AnswerUnrestricted(ctx, query, lang)
		if err != nil {
			return nil, err
		}
		return &models.Answer{Query: query, Content: content}, nil
	}

	embedCtx, cancel := context.WithTimeout(ctx, r.cfg.RequestTimeout())
	queryEmbedding, err := r.embedder.EmbedQuery(embedCtx, query)
	cancel()
	if err != nil {
		return nil, err
	}

	chunks := retriever.Retrieve(queryEmbedding, mode.idx, r.cfg.RAG.TopK)
	log.Debug().Int("retrieved", len(chunks)).Msg("Retrieved context chunks")

	content, err := r.Answer(ctx, query, chunks, lang)
	if err != nil {
		return nil, err
	}
	return &models.Answer{Query: query, Content: content, Sources: chunks}, nil
}

// Answer composes the grounded prompt from the retrieved chunks and
// delegates generation. The instruction binds the model strictly to the
// supplied context and to saying so when the context lacks the answer;
// the model's response comes back verbatim.
func (r *RAG) Answer(ctx context.Context, query string, chunks []models.Chunk, lang models.Language) (string, error) {
	prompt := fmt.Sprintf(models.GroundedPromptTemplate, buildContext(chunks), query)
	system := fmt.Sprintf(models.GroundedSystemTemplate, lang.Name())
	return r.generate(ctx, system, prompt)
}

// AnswerUnrestricted generates without document grounding, under the
// ocean-intelligence persona with the output language enforced.
func (r *RAG) AnswerUnrestricted(ctx context.Context, query string, lang models.Language) (string, error) {
	system := fmt.Sprintf(models.UnrestrictedSystemTemplate, lang.Name())
	return r.generate(ctx, system, query)
}

func (r *RAG) generate(ctx context.Context, system, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, r.cfg.RequestTimeout())
	defer cancel()
	content, err := r.generator.GenerateContent(genCtx, system, prompt)
	if err != nil {
		return "", models.WrapError(models.ErrGeneration, err)
	}
	return content, nil
}

func buildContext(chunks []models.Chunk) string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return strings.Join(texts, models.ContextSeparator)
}
