// Package notify delivers best-effort "processing complete/failed" signals.
// Delivery is fire-and-forget: Notify returns an error, but callers are
// permitted to ignore it and the pipeline never depends on delivery.
package notify

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "github.com/rs/zerolog"
)

// Event is one pipeline outcome signal.
type Event struct {
    ProcessID string `json:"processId"`
    Status    string `json:"status"` // completed | failed
    Title     string `json:"title,omitempty"`
    URL       string `json:"url,omitempty"`
    Message   string `json:"message,omitempty"`
}

// Notifier publishes events. Implementations must be safe to call from the
// pipeline goroutine and must not block indefinitely.
type Notifier interface {
    Notify(ctx context.Context, ev Event) error
}

// LogNotifier writes events to the structured log. It never fails.
type LogNotifier struct {
    Logger zerolog.Logger
}

func (n *LogNotifier) Notify(_ context.Context, ev Event) error {
    n.Logger.Info().
        Str("process", ev.ProcessID).
        Str("status", ev.Status).
        Str("title", ev.Title).
        Msg("processing finished")
    return nil
}

// WebhookNotifier POSTs events as JSON to a fixed endpoint. A down endpoint
// is a normal condition, equivalent to a closed popup on the original
// surface, so callers swallow the returned error.
type WebhookNotifier struct {
    URL        string
    HTTPClient *http.Client
}

func (n *WebhookNotifier) Notify(ctx context.Context, ev Event) error {
    if n.URL == "" {
        return nil
    }
    payload, err := json.Marshal(ev)
    if err != nil {
        return err
    }
    client := n.HTTPClient
    if client == nil {
        client = &http.Client{Timeout: 5 * time.Second}
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(payload))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    resp, err := client.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return fmt.Errorf("webhook status: %d", resp.StatusCode)
    }
    return nil
}
