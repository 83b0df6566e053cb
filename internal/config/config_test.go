package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ocean-rag/internal/models"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.RAG.ChunkSize != models.DefaultChunkSize {
		t.Errorf("expected default chunk size %d, got %d", models.DefaultChunkSize, cfg.RAG.ChunkSize)
	}
	if cfg.RAG.ChunkOverlap != models.DefaultChunkOverlap {
		t.Errorf("expected default overlap %d, got %d", models.DefaultChunkOverlap, cfg.RAG.ChunkOverlap)
	}
	if cfg.RAG.TopK != models.DefaultTopK {
		t.Errorf("expected default top_k %d, got %d", models.DefaultTopK, cfg.RAG.TopK)
	}
	if cfg.EmbedLLM.Model == "" || cfg.InferenceLLM.Model == "" {
		t.Error("model defaults not applied")
	}
	if cfg.RequestTimeout() != 60*time.Second {
		t.Errorf("expected 60s default timeout, got %s", cfg.RequestTimeout())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
embed_llm:
  key: test-key
  model: custom-embed
rag:
  chunk_size: 128
  chunk_overlap: 16
  top_k: 5
  request_timeout_secs: 10
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EmbedLLM.Key != "test-key" || cfg.EmbedLLM.Model != "custom-embed" {
		t.Errorf("embed_llm not loaded: %+v", cfg.EmbedLLM)
	}
	if cfg.RAG.ChunkSize != 128 || cfg.RAG.ChunkOverlap != 16 || cfg.RAG.TopK != 5 {
		t.Errorf("rag section not loaded: %+v", cfg.RAG)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.RequestTimeout())
	}
}
