package watch

import (
    "context"
    "crypto/sha256"
    "encoding/hex"
    "time"

    "github.com/rs/zerolog/log"
)

// Fingerprint digests extracted content for change comparison.
func Fingerprint(text string) string {
    sum := sha256.Sum256([]byte(text))
    return hex.EncodeToString(sum[:])
}

// Watcher polls a page fingerprint on a fixed interval and debounces
// change bursts into single OnChange calls. Polling is best-effort: a
// failed check is logged and the next tick tries again.
type Watcher struct {
    // Check produces the current content fingerprint.
    Check func(ctx context.Context) (string, error)
    // OnStart runs once after the settle delay, before the first check.
    // This is the auto-extraction hook; it must not run earlier, or
    // dynamic content has no chance to load.
    OnStart func()
    // OnChange runs after a change burst settles.
    OnChange func()
    // Interval between checks. Zero means 10s.
    Interval time.Duration
    // Quiet is the debounce settle period. Zero means DefaultQuiet.
    Quiet time.Duration
    // SettleDelay postpones the first check so dynamic content can load.
    SettleDelay time.Duration
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
    interval := w.Interval
    if interval <= 0 {
        interval = 10 * time.Second
    }
    debouncer := NewDebouncer(w.Quiet, w.OnChange)
    defer debouncer.Stop()

    if w.SettleDelay > 0 {
        select {
        case <-ctx.Done():
            return
        case <-time.After(w.SettleDelay):
        }
    }
    if w.OnStart != nil {
        w.OnStart()
    }

    var last string
    check := func() {
        fp, err := w.Check(ctx)
        if err != nil {
            // Best-effort by contract: swallowed, never surfaced.
            log.Debug().Err(err).Msg("watch check failed")
            return
        }
        if fp != last {
            if last != "" {
                debouncer.Trigger()
            }
            last = fp
        }
    }

    check()
    ticker := time.NewTicker(interval)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            check()
        }
    }
}
