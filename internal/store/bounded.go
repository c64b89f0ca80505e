// Package store persists recent analysis results and tracks in-flight
// processing records. The bounded store keeps at most Capacity most-recent
// entries, evicting oldest-by-timestamp beyond the cap.
package store

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sort"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/pagesift/pagesift/internal/analyze"
)

const (
    entryPrefix = "analysis_"
    entrySuffix = ".json"

    // DefaultCapacity bounds the recent-history cache.
    DefaultCapacity = 10
)

// StoredAnalysis is the persisted form of an analysis result.
type StoredAnalysis struct {
    ProcessID string         `json:"processId"`
    StoredAt  int64          `json:"storedAt"` // unix milliseconds
    Result    analyze.Result `json:"result"`
}

// Bounded is a directory-backed result store, one JSON file per entry.
// Writes are atomic per file but not transactional across Put and
// EvictExcess; a crash in between transiently exceeds the cap and the next
// eviction repairs it.
type Bounded struct {
    Dir      string
    Capacity int
}

func (s *Bounded) capacity() int {
    if s.Capacity > 0 {
        return s.Capacity
    }
    return DefaultCapacity
}

func (s *Bounded) ensureDir() error {
    if s == nil || s.Dir == "" {
        return errors.New("store dir not configured")
    }
    return os.MkdirAll(s.Dir, 0o755)
}

func (s *Bounded) pathFor(id string) string {
    return filepath.Join(s.Dir, entryPrefix+id+entrySuffix)
}

// NewProcessID generates a process id from the current time and a random
// suffix. Uniqueness is probabilistic; a same-millisecond collision only
// risks overwriting a duplicate, never corrupting other entries.
func NewProcessID() string {
    suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
    return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// Put writes the result keyed by id with the current timestamp, then evicts
// entries beyond the configured capacity.
func (s *Bounded) Put(ctx context.Context, id string, result analyze.Result) error {
    if err := s.ensureDir(); err != nil {
        return err
    }
    entry := StoredAnalysis{ProcessID: id, StoredAt: time.Now().UnixMilli(), Result: result}
    data, err := json.Marshal(entry)
    if err != nil {
        return err
    }
    if err := os.WriteFile(s.pathFor(id), data, 0o644); err != nil {
        return fmt.Errorf("store write: %w", err)
    }
    return s.EvictExcess(ctx, s.capacity())
}

// Get loads one entry by process id.
func (s *Bounded) Get(_ context.Context, id string) (StoredAnalysis, bool, error) {
    if err := s.ensureDir(); err != nil {
        return StoredAnalysis{}, false, err
    }
    data, err := os.ReadFile(s.pathFor(id))
    if err != nil {
        return StoredAnalysis{}, false, nil
    }
    var entry StoredAnalysis
    if err := json.Unmarshal(data, &entry); err != nil {
        return StoredAnalysis{}, false, fmt.Errorf("store decode: %w", err)
    }
    return entry, true, nil
}

// List returns all entries, newest first by StoredAt.
func (s *Bounded) List(_ context.Context) ([]StoredAnalysis, error) {
    if err := s.ensureDir(); err != nil {
        return nil, err
    }
    names, err := os.ReadDir(s.Dir)
    if err != nil {
        return nil, err
    }
    var entries []StoredAnalysis
    for _, d := range names {
        if d.IsDir() || !strings.HasPrefix(d.Name(), entryPrefix) || !strings.HasSuffix(d.Name(), entrySuffix) {
            continue
        }
        data, err := os.ReadFile(filepath.Join(s.Dir, d.Name()))
        if err != nil {
            continue // skip unreadable
        }
        var entry StoredAnalysis
        if err := json.Unmarshal(data, &entry); err != nil {
            continue // skip malformed
        }
        entries = append(entries, entry)
    }
    sort.SliceStable(entries, func(i, j int) bool {
        return entries[i].StoredAt > entries[j].StoredAt
    })
    return entries, nil
}

// EvictExcess deletes every entry beyond the capacity most-recent ones.
// After it returns without error the store holds at most capacity entries.
func (s *Bounded) EvictExcess(ctx context.Context, capacity int) error {
    if capacity <= 0 {
        capacity = DefaultCapacity
    }
    entries, err := s.List(ctx)
    if err != nil {
        return err
    }
    for _, entry := range entries[min(capacity, len(entries)):] {
        if err := os.Remove(s.pathFor(entry.ProcessID)); err != nil && !os.IsNotExist(err) {
            return fmt.Errorf("store evict: %w", err)
        }
    }
    return nil
}
