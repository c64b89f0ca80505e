package llm

import (
    "context"

    openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal interface the analysis engine needs to call a chat
// model. It mirrors the CreateChatCompletion method so any OpenAI-compatible
// or local backend can be adapted without touching callers.
type Client interface {
    CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
    Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    return p.Inner.CreateChatCompletion(ctx, request)
}

// New builds an OpenAI-compatible provider for the given base URL, key and
// default config. An empty base URL uses the upstream default endpoint.
func New(baseURL, apiKey string) *OpenAIProvider {
    cfg := openai.DefaultConfig(apiKey)
    if baseURL != "" {
        cfg.BaseURL = baseURL
    }
    return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}
}
