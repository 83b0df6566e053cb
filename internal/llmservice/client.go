package llmservice

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"

	"ocean-rag/internal/config"
)

// Generator produces text from a system instruction and a user prompt.
// The RAG composer owns prompt assembly; this interface owns nothing but
// the model call.
type Generator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// Client calls a hosted generation model through langchaingo.
type Client struct {
	llm llms.Model
}

// NewGoogleAIClient builds the default client against the hosted Gemini
// generation model.
func NewGoogleAIClient(ctx context.Context, cfg *config.LLMConfig) (*Client, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Key),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return &Client{llm: llm}, nil
}

// NewOpenAIClient targets an OpenAI-compatible chat endpoint.
func NewOpenAIClient(cfg *config.LLMConfig) (*Client, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return &Client{llm: llm}, nil
}

// GenerateContent sends one generation request. The caller bounds it with
// a context deadline; no retry happens here.
func (c *Client) GenerateContent(ctx context.Context, system, prompt string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextContent{Text: system}},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}

	res, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	log.Debug().Int("choices", len(res.Choices)).Msg("Generated content")
	return res.Choices[0].Content, nil
}
