package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ocean-rag/internal/models"
)

// LLMConfig points at a hosted model endpoint.
type LLMConfig struct {
	Key     string `yaml:"key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// RAGConfig holds the retrieval parameters.
type RAGConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`
	// RequestTimeoutSecs bounds each external embedding/generation call.
	RequestTimeoutSecs int `yaml:"request_timeout_secs"`
}

type Config struct {
	EmbedLLM     LLMConfig `yaml:"embed_llm"`
	InferenceLLM LLMConfig `yaml:"inference_llm"`
	RAG          RAGConfig `yaml:"rag"`
}

const (
	defaultEmbeddingModel = "text-embedding-004"
	defaultInferenceModel = "gemini-2.5-flash"
	defaultTimeoutSecs    = 60

	apiKeyEnv = "GEMINI_API_KEY"
)

// LoadConfig reads the yaml config at path. A missing file yields the
// defaults; the API key falls back to the GEMINI_API_KEY environment
// variable when the file does not set one.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.EmbedLLM.Model == "" {
		cfg.EmbedLLM.Model = defaultEmbeddingModel
	}
	if cfg.InferenceLLM.Model == "" {
		cfg.InferenceLLM.Model = defaultInferenceModel
	}
	if cfg.EmbedLLM.Key == "" {
		cfg.EmbedLLM.Key = os.Getenv(apiKeyEnv)
	}
	if cfg.InferenceLLM.Key == "" {
		cfg.InferenceLLM.Key = os.Getenv(apiKeyEnv)
	}
	if cfg.RAG.ChunkSize == 0 {
		cfg.RAG.ChunkSize = models.DefaultChunkSize
	}
	if cfg.RAG.ChunkOverlap == 0 {
		cfg.RAG.ChunkOverlap = models.DefaultChunkOverlap
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = models.DefaultTopK
	}
	if cfg.RAG.RequestTimeoutSecs == 0 {
		cfg.RAG.RequestTimeoutSecs = defaultTimeoutSecs
	}
}

// RequestTimeout returns the per-call deadline for external model calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RAG.RequestTimeoutSecs) * time.Second
}
