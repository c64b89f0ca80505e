package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "io"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"

    "github.com/pagesift/pagesift/internal/app"
    "github.com/pagesift/pagesift/internal/store"
)

func main() {
    // Logging setup
    zerolog.TimeFieldFormat = time.RFC3339
    log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

    var (
        pageURL       string
        inputPath     string
        outputPath    string
        configPath    string
        mode          string
        minContent    int
        readability   bool
        userAgent     string
        fetchTimeout  time.Duration
        llmBaseURL    string
        llmModel      string
        llmKey        string
        storeDir      string
        storeCap      int
        webhookURL    string
        watchMode     bool
        watchInterval time.Duration
        settleDelay   time.Duration
        listRecent    bool
        verbose       bool
    )

    flag.StringVar(&pageURL, "url", "", "Page URL to fetch and analyze")
    flag.StringVar(&inputPath, "input", "", "Path to a local HTML file ('-' for stdin) instead of fetching")
    flag.StringVar(&outputPath, "output", "", "Write the analysis result JSON here instead of stdout")
    flag.StringVar(&configPath, "config", os.Getenv("PAGESIFT_CONFIG"), "Path to YAML settings file")
    flag.StringVar(&mode, "mode", "article", "Content budget: 'article' or 'quick'")
    flag.IntVar(&minContent, "min.content", 0, "Minimum characters to accept a content candidate (0 uses default)")
    flag.BoolVar(&readability, "readability", false, "Enable the readability cross-check strategy")
    flag.StringVar(&userAgent, "ua", "pagesift/1.0 (+https://github.com/pagesift/pagesift)", "User-Agent for page fetches")
    flag.DurationVar(&fetchTimeout, "fetch.timeout", 15*time.Second, "Per-request fetch timeout")
    flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for summary generation")
    flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name")
    flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key; empty keeps the statistical engine")
    flag.StringVar(&storeDir, "store.dir", ".pagesift-store", "Directory for the bounded result store")
    flag.IntVar(&storeCap, "store.capacity", store.DefaultCapacity, "Most-recent results to keep")
    flag.StringVar(&webhookURL, "notify.webhook", os.Getenv("PAGESIFT_WEBHOOK"), "Optional webhook for completion events")
    flag.BoolVar(&watchMode, "watch", false, "Keep polling the page and re-analyze after content changes settle")
    flag.DurationVar(&watchInterval, "watch.interval", 10*time.Second, "Polling interval in watch mode")
    flag.DurationVar(&settleDelay, "watch.settle", time.Second, "Delay before the first watch-mode extraction")
    flag.BoolVar(&listRecent, "list", false, "Print stored recent results and exit")
    flag.BoolVar(&verbose, "v", false, "Verbose logging")
    flag.Parse()

    if verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }

    cfg := app.Config{
        Mode:             mode,
        MinContentLength: minContent,
        Readability:      readability,
        UserAgent:        userAgent,
        FetchTimeout:     fetchTimeout,
        FetchMaxAttempts: 3,
        LLMBaseURL:       llmBaseURL,
        LLMModel:         llmModel,
        LLMAPIKey:        llmKey,
        StoreDir:         storeDir,
        StoreCapacity:    storeCap,
        WebhookURL:       webhookURL,
        WatchInterval:    watchInterval,
        AutoExtractDelay: settleDelay,
        AutoExtract:      true,
        Verbose:          verbose,
    }
    if configPath != "" {
        fc, err := app.LoadConfigFile(configPath)
        if err != nil {
            log.Fatal().Err(err).Str("path", configPath).Msg("cannot load settings")
        }
        fc.Apply(&cfg)
    }
    if cfg.Verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    a := app.New(cfg)

    switch {
    case listRecent:
        entries, err := a.Results().List(ctx)
        if err != nil {
            log.Fatal().Err(err).Msg("cannot read result store")
        }
        writeJSON(outputPath, entries)
    case watchMode:
        if pageURL == "" {
            log.Fatal().Msg("watch mode needs -url")
        }
        log.Info().Str("url", pageURL).Msg("watching page")
        a.Watch(ctx, pageURL)
    case inputPath != "":
        raw, err := readInput(inputPath)
        if err != nil {
            log.Fatal().Err(err).Str("path", inputPath).Msg("cannot read input")
        }
        rec, err := a.ProcessHTML(ctx, raw, pageURL)
        finish(outputPath, rec, err)
    case pageURL != "":
        rec, err := a.ProcessURL(ctx, pageURL)
        finish(outputPath, rec, err)
    default:
        fmt.Fprintln(os.Stderr, "pagesift: pass -url, -input, -watch or -list (see -h)")
        os.Exit(2)
    }
}

func readInput(path string) ([]byte, error) {
    if path == "-" {
        return io.ReadAll(os.Stdin)
    }
    return os.ReadFile(path)
}

func finish(outputPath string, rec store.ProcessRecord, err error) {
    if err != nil {
        log.Error().Err(err).Msg("processing failed")
        os.Exit(1)
    }
    writeJSON(outputPath, rec.Result)
}

func writeJSON(outputPath string, v any) {
    data, err := json.MarshalIndent(v, "", "  ")
    if err != nil {
        log.Fatal().Err(err).Msg("encode result")
    }
    data = append(data, '\n')
    if outputPath == "" {
        _, _ = os.Stdout.Write(data)
        return
    }
    if err := os.WriteFile(outputPath, data, 0o644); err != nil {
        log.Fatal().Err(err).Msg("write output")
    }
    log.Info().Str("out", outputPath).Msg("wrote result")
}
