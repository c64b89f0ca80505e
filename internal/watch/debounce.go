// Package watch collapses bursts of page-change signals into single
// downstream notifications after a quiet period.
package watch

import (
    "sync"
    "time"
)

// DefaultQuiet is the settle delay applied to change bursts.
const DefaultQuiet = time.Second

// Debouncer fires fn once per burst of Trigger calls, after Quiet has
// passed with no further trigger. It is the only timer-based suspension
// point in the pipeline.
type Debouncer struct {
    Quiet time.Duration

    mu    sync.Mutex
    timer *time.Timer
    fn    func()
}

// NewDebouncer builds a debouncer around fn. A non-positive quiet period
// falls back to DefaultQuiet.
func NewDebouncer(quiet time.Duration, fn func()) *Debouncer {
    if quiet <= 0 {
        quiet = DefaultQuiet
    }
    return &Debouncer{Quiet: quiet, fn: fn}
}

// Trigger records a change. The wrapped function runs once Quiet elapses
// without another Trigger.
func (d *Debouncer) Trigger() {
    d.mu.Lock()
    defer d.mu.Unlock()
    if d.timer != nil {
        d.timer.Stop()
    }
    d.timer = time.AfterFunc(d.Quiet, d.fn)
}

// Stop cancels any pending fire.
func (d *Debouncer) Stop() {
    d.mu.Lock()
    defer d.mu.Unlock()
    if d.timer != nil {
        d.timer.Stop()
        d.timer = nil
    }
}
