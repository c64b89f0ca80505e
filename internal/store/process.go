package store

import (
    "errors"
    "sync"
    "time"

    "github.com/pagesift/pagesift/internal/analyze"
    "github.com/pagesift/pagesift/internal/extract"
)

// Status is the lifecycle state of one processing run.
type Status string

const (
    StatusProcessing Status = "processing"
    StatusCompleted  Status = "completed"
    StatusFailed     Status = "failed"
)

// ProcessRecord tracks one extraction-to-analysis run from creation to its
// terminal state. Records are session-scoped bookkeeping, not durable data.
type ProcessRecord struct {
    ID      string
    Status  Status
    Content extract.Content
    Result  *analyze.Result
    Error   string

    CreatedAt time.Time
    UpdatedAt time.Time
}

// ErrProcessNotFound is returned when a record id is unknown to the table.
var ErrProcessNotFound = errors.New("process not found")

// ProcessTable is the session-scoped table of active processes, passed by
// handle to whoever needs it rather than living as ambient global state.
type ProcessTable struct {
    mu      sync.RWMutex
    records map[string]*ProcessRecord
}

func NewProcessTable() *ProcessTable {
    return &ProcessTable{records: make(map[string]*ProcessRecord)}
}

// Create registers a new record in the processing state and returns it.
func (t *ProcessTable) Create(id string, content extract.Content) *ProcessRecord {
    t.mu.Lock()
    defer t.mu.Unlock()

    now := time.Now()
    rec := &ProcessRecord{
        ID:        id,
        Status:    StatusProcessing,
        Content:   content,
        CreatedAt: now,
        UpdatedAt: now,
    }
    t.records[id] = rec
    return rec
}

// Get returns a copy of the record for id.
func (t *ProcessTable) Get(id string) (ProcessRecord, error) {
    t.mu.RLock()
    defer t.mu.RUnlock()

    rec, ok := t.records[id]
    if !ok {
        return ProcessRecord{}, ErrProcessNotFound
    }
    return *rec, nil
}

// Complete transitions the record to completed with its result.
func (t *ProcessTable) Complete(id string, result analyze.Result) error {
    t.mu.Lock()
    defer t.mu.Unlock()

    rec, ok := t.records[id]
    if !ok {
        return ErrProcessNotFound
    }
    rec.Status = StatusCompleted
    rec.Result = &result
    rec.UpdatedAt = time.Now()
    return nil
}

// Fail transitions the record to failed with the error message.
func (t *ProcessTable) Fail(id string, msg string) error {
    t.mu.Lock()
    defer t.mu.Unlock()

    rec, ok := t.records[id]
    if !ok {
        return ErrProcessNotFound
    }
    rec.Status = StatusFailed
    rec.Error = msg
    rec.UpdatedAt = time.Now()
    return nil
}

// Delete removes a finished record from the table.
func (t *ProcessTable) Delete(id string) {
    t.mu.Lock()
    defer t.mu.Unlock()
    delete(t.records, id)
}

// Len reports the number of live records.
func (t *ProcessTable) Len() int {
    t.mu.RLock()
    defer t.mu.RUnlock()
    return len(t.records)
}
