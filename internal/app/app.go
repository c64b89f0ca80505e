// Package app coordinates one extraction-to-analysis pipeline run: fetch,
// extract, analyze, store, notify. Each request is processed to completion
// before the next; the process table is the only shared bookkeeping and it
// is session-scoped, never ambient.
package app

import (
    "bytes"
    "context"
    "fmt"
    "strings"

    "github.com/PuerkitoBio/goquery"
    "github.com/rs/zerolog/log"

    "github.com/pagesift/pagesift/internal/analyze"
    "github.com/pagesift/pagesift/internal/extract"
    "github.com/pagesift/pagesift/internal/fetch"
    "github.com/pagesift/pagesift/internal/llm"
    "github.com/pagesift/pagesift/internal/notify"
    "github.com/pagesift/pagesift/internal/store"
    "github.com/pagesift/pagesift/internal/watch"
)

// App owns the pipeline collaborators for one session.
type App struct {
    cfg       Config
    fetcher   *fetch.Client
    engine    analyze.Engine
    results   *store.Bounded
    processes *store.ProcessTable
    notifier  notify.Notifier
}

// New wires the pipeline from configuration. Extra site selector lists are
// registered once here, the single designated entry point.
func New(cfg Config) *App {
    for key, selectors := range cfg.Sites {
        extract.RegisterSite(key, selectors)
    }

    var engine analyze.Engine = analyze.StatisticalEngine{Sentences: cfg.SummaryLength}
    if cfg.LLMAPIKey != "" {
        engine = &analyze.LLMEngine{
            Client: llm.New(cfg.LLMBaseURL, cfg.LLMAPIKey),
            Model:  cfg.LLMModel,
        }
    }

    var notifier notify.Notifier = &notify.LogNotifier{Logger: log.Logger}
    if cfg.WebhookURL != "" {
        notifier = &notify.WebhookNotifier{URL: cfg.WebhookURL}
    }

    return &App{
        cfg: cfg,
        fetcher: &fetch.Client{
            UserAgent:         cfg.UserAgent,
            MaxAttempts:       cfg.FetchMaxAttempts,
            PerRequestTimeout: cfg.FetchTimeout,
        },
        engine:    engine,
        results:   &store.Bounded{Dir: cfg.StoreDir, Capacity: cfg.StoreCapacity},
        processes: store.NewProcessTable(),
        notifier:  notifier,
    }
}

// Processes exposes the session's process table to callers that render
// status.
func (a *App) Processes() *store.ProcessTable { return a.processes }

// Results exposes the bounded result store.
func (a *App) Results() *store.Bounded { return a.results }

func (a *App) extractOptions(raw []byte) extract.Options {
    opts := extract.Options{
        MinContentLength: a.cfg.MinContentLength,
        Readability:      a.cfg.Readability,
        RawHTML:          raw,
    }
    if strings.EqualFold(a.cfg.Mode, "quick") {
        opts.Mode = extract.ModeQuick
    }
    return opts
}

// ProcessURL fetches a page and runs the pipeline over it. The returned
// record is terminal: completed with a result, or failed with a message.
func (a *App) ProcessURL(ctx context.Context, pageURL string) (store.ProcessRecord, error) {
    if !fetch.Accessible(pageURL) {
        // Checked before any extraction attempt; the UI renders this as a
        // disabled action, not an exception.
        return store.ProcessRecord{}, fmt.Errorf("%w: %s", fetch.ErrHostAccessDenied, pageURL)
    }
    raw, _, err := a.fetcher.Get(ctx, pageURL)
    if err != nil {
        return store.ProcessRecord{}, fmt.Errorf("fetch %s: %w", pageURL, err)
    }
    return a.ProcessHTML(ctx, raw, pageURL)
}

// ProcessHTML runs extraction and analysis over already-obtained HTML.
func (a *App) ProcessHTML(ctx context.Context, raw []byte, pageURL string) (store.ProcessRecord, error) {
    doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
    if err != nil {
        return store.ProcessRecord{}, fmt.Errorf("parse document: %w", err)
    }
    content := extract.Article(doc, pageURL, a.extractOptions(raw))

    id := store.NewProcessID()
    a.processes.Create(id, content)
    log.Debug().Str("process", id).Int("chars", len(content.Text)).
        Str("quality", string(content.Metadata.Quality)).Msg("extracted")

    result, err := a.engine.Analyze(ctx, analyze.Request{
        Content: content.Text,
        URL:     pageURL,
        Title:   content.Metadata.Title,
    })
    if err != nil {
        // No automatic retry: record the fault and tell listeners.
        _ = a.processes.Fail(id, err.Error())
        a.publish(ctx, notify.Event{
            ProcessID: id, Status: string(store.StatusFailed),
            URL: pageURL, Message: err.Error(),
        })
        rec, _ := a.processes.Get(id)
        return rec, err
    }

    if storeErr := a.results.Put(ctx, id, result); storeErr != nil {
        // The result is lost but the run still succeeds; the notification
        // reflects analysis, not persistence.
        log.Warn().Err(storeErr).Str("process", id).Msg("result store write failed")
    }

    _ = a.processes.Complete(id, result)
    a.publish(ctx, notify.Event{
        ProcessID: id, Status: string(store.StatusCompleted),
        Title: result.Title, URL: pageURL,
    })
    rec, _ := a.processes.Get(id)
    return rec, nil
}

// publish sends a best-effort notification; failure is logged and ignored.
func (a *App) publish(ctx context.Context, ev notify.Event) {
    if err := a.notifier.Notify(ctx, ev); err != nil {
        log.Warn().Err(err).Str("process", ev.ProcessID).Msg("notification not delivered")
    }
}

// Watch polls pageURL, debouncing content changes into re-analysis, until
// ctx is cancelled. The initial extraction is delayed by the configured
// settle time so dynamic content can load; its failure is swallowed.
func (a *App) Watch(ctx context.Context, pageURL string) {
    run := func() {
        if _, err := a.ProcessURL(ctx, pageURL); err != nil {
            log.Warn().Err(err).Str("url", pageURL).Msg("watched page processing failed")
        }
    }
    watcher := &watch.Watcher{
        Check: func(ctx context.Context) (string, error) {
            raw, _, err := a.fetcher.Get(ctx, pageURL)
            if err != nil {
                return "", err
            }
            doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
            if err != nil {
                return "", err
            }
            content := extract.Article(doc, pageURL, a.extractOptions(raw))
            return watch.Fingerprint(content.Text), nil
        },
        OnChange:    run,
        Interval:    a.cfg.WatchInterval,
        Quiet:       a.cfg.WatchQuiet,
        SettleDelay: a.cfg.AutoExtractDelay,
    }
    if a.cfg.AutoExtract {
        // Runs after the settle delay, never before.
        watcher.OnStart = run
    }
    watcher.Run(ctx)
}
