package analyze

import (
    "context"
    "fmt"
    "strings"
    "time"

    openai "github.com/sashabaranov/go-openai"

    "github.com/pagesift/pagesift/internal/llm"
)

// Fault is the typed failure returned when the analysis backend rejects a
// request. Callers record it against the owning process; there is no
// automatic retry.
type Fault struct {
    Err error
}

func (f *Fault) Error() string { return fmt.Sprintf("analysis failed: %v", f.Err) }

func (f *Fault) Unwrap() error { return f.Err }

// LLMEngine summarizes through a chat model while keeping the statistical
// engine's derivations for counts and topics. It is the concrete backend
// behind the Engine seam.
type LLMEngine struct {
    Client llm.Client
    Model  string
    // MaxSummaryTokens bounds the completion. Zero means 256.
    MaxSummaryTokens int
}

func (e *LLMEngine) Analyze(ctx context.Context, req Request) (Result, error) {
    if e.Client == nil {
        return Result{}, &Fault{Err: fmt.Errorf("no model client configured")}
    }
    words := WordCount(req.Content)
    maxTokens := e.MaxSummaryTokens
    if maxTokens <= 0 {
        maxTokens = 256
    }
    resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
        Model:     e.Model,
        MaxTokens: maxTokens,
        Messages: []openai.ChatCompletionMessage{
            {
                Role:    openai.ChatMessageRoleSystem,
                Content: "Summarize the article in at most three sentences. Reply with the summary only.",
            },
            {
                Role:    openai.ChatMessageRoleUser,
                Content: req.Content,
            },
        },
    })
    if err != nil {
        return Result{}, &Fault{Err: err}
    }
    if len(resp.Choices) == 0 {
        return Result{}, &Fault{Err: fmt.Errorf("model returned no choices")}
    }
    summary := strings.TrimSpace(resp.Choices[0].Message.Content)
    if summary == "" {
        summary = Summarize(req.Content, summarySentences)
    }
    return Result{
        Summary:     summary,
        WordCount:   words,
        ReadingTime: readingMinutes(words),
        KeyTopics:   KeyTopics(req.Content, topicCount),
        Sentiment:   PlaceholderSentiment,
        ExtractedAt: time.Now().Unix(),
        URL:         req.URL,
        Title:       req.Title,
    }, nil
}
