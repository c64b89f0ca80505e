package app

import "time"

// Config holds runtime configuration for the pipeline.
type Config struct {
    // Mode selects the content length budget: "article" or "quick".
    Mode string

    // Extraction
    MinContentLength int
    Readability      bool
    // Sites maps extra site keys to selector lists, merged into the
    // built-in table at startup.
    Sites map[string][]string

    // Fetch
    UserAgent         string
    FetchTimeout      time.Duration
    FetchMaxAttempts  int

    // LLM (optional; statistical engine is used when no key is set)
    LLMBaseURL string
    LLMModel   string
    LLMAPIKey  string

    // Store
    StoreDir      string
    StoreCapacity int

    // Notification
    WebhookURL string

    // Watch mode
    WatchInterval    time.Duration
    WatchQuiet       time.Duration
    AutoExtractDelay time.Duration

    // Settings collaborator fields
    Language      string
    SummaryLength int
    AutoExtract   bool

    Verbose bool
}
