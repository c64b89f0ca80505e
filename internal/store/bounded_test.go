package store

import (
    "context"
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/pagesift/pagesift/internal/analyze"
)

func writeEntry(t *testing.T, s *Bounded, id string, storedAt int64) {
    t.Helper()
    entry := StoredAnalysis{ProcessID: id, StoredAt: storedAt, Result: analyze.Result{Title: id}}
    data, err := json.Marshal(entry)
    if err != nil {
        t.Fatalf("marshal: %v", err)
    }
    if err := os.WriteFile(s.pathFor(id), data, 0o644); err != nil {
        t.Fatalf("write entry: %v", err)
    }
}

func TestBounded_PutAndGet(t *testing.T) {
    s := &Bounded{Dir: t.TempDir()}
    ctx := context.Background()

    id := NewProcessID()
    if err := s.Put(ctx, id, analyze.Result{Title: "a", WordCount: 42}); err != nil {
        t.Fatalf("put: %v", err)
    }
    entry, ok, err := s.Get(ctx, id)
    if err != nil || !ok {
        t.Fatalf("get: ok=%v err=%v", ok, err)
    }
    if entry.Result.WordCount != 42 || entry.ProcessID != id {
        t.Fatalf("unexpected entry %+v", entry)
    }
    if entry.StoredAt == 0 {
        t.Fatalf("storedAt not set")
    }
}

func TestBounded_EvictExcessKeepsTenMostRecent(t *testing.T) {
    s := &Bounded{Dir: t.TempDir()}
    ctx := context.Background()
    if err := s.ensureDir(); err != nil {
        t.Fatalf("ensure dir: %v", err)
    }

    base := time.Now().UnixMilli()
    for i := 0; i < 15; i++ {
        writeEntry(t, s, fmt.Sprintf("p%02d", i), base+int64(i))
    }
    if err := s.EvictExcess(ctx, 10); err != nil {
        t.Fatalf("evict: %v", err)
    }

    entries, err := s.List(ctx)
    if err != nil {
        t.Fatalf("list: %v", err)
    }
    if len(entries) != 10 {
        t.Fatalf("expected 10 entries after eviction, got %d", len(entries))
    }
    // Exactly the 10 newest survive: p05..p14, newest first.
    for i, entry := range entries {
        want := fmt.Sprintf("p%02d", 14-i)
        if entry.ProcessID != want {
            t.Fatalf("position %d: got %q, want %q", i, entry.ProcessID, want)
        }
    }
}

func TestBounded_PutBoundsStore(t *testing.T) {
    s := &Bounded{Dir: t.TempDir(), Capacity: 3}
    ctx := context.Background()

    for i := 0; i < 8; i++ {
        id := fmt.Sprintf("id-%d", i)
        if err := s.Put(ctx, id, analyze.Result{Title: id}); err != nil {
            t.Fatalf("put %d: %v", i, err)
        }
        entries, err := s.List(ctx)
        if err != nil {
            t.Fatalf("list: %v", err)
        }
        if len(entries) > 3 {
            t.Fatalf("capacity exceeded after put %d: %d entries", i, len(entries))
        }
        // Different StoredAt per entry so ordering is well defined.
        time.Sleep(2 * time.Millisecond)
    }
}

func TestBounded_ListSkipsMalformedEntries(t *testing.T) {
    s := &Bounded{Dir: t.TempDir()}
    ctx := context.Background()
    if err := s.ensureDir(); err != nil {
        t.Fatalf("ensure dir: %v", err)
    }
    writeEntry(t, s, "good", time.Now().UnixMilli())
    if err := os.WriteFile(filepath.Join(s.Dir, "analysis_bad.json"), []byte("{nope"), 0o644); err != nil {
        t.Fatalf("write bad entry: %v", err)
    }
    if err := os.WriteFile(filepath.Join(s.Dir, "unrelated.txt"), []byte("x"), 0o644); err != nil {
        t.Fatalf("write unrelated: %v", err)
    }

    entries, err := s.List(ctx)
    if err != nil {
        t.Fatalf("list: %v", err)
    }
    if len(entries) != 1 || entries[0].ProcessID != "good" {
        t.Fatalf("expected only the good entry, got %+v", entries)
    }
}

func TestNewProcessID_Format(t *testing.T) {
    seen := make(map[string]bool)
    for i := 0; i < 100; i++ {
        id := NewProcessID()
        if seen[id] {
            t.Fatalf("duplicate id %q", id)
        }
        seen[id] = true
    }
}
