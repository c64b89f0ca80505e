package store

import (
    "errors"
    "testing"

    "github.com/pagesift/pagesift/internal/analyze"
    "github.com/pagesift/pagesift/internal/extract"
)

func TestProcessTable_Lifecycle(t *testing.T) {
    table := NewProcessTable()
    content := extract.Content{Text: "body", Metadata: extract.Metadata{Title: "T"}}

    rec := table.Create("p1", content)
    if rec.Status != StatusProcessing {
        t.Fatalf("new record status %q, want processing", rec.Status)
    }

    if err := table.Complete("p1", analyze.Result{Summary: "s"}); err != nil {
        t.Fatalf("complete: %v", err)
    }
    got, err := table.Get("p1")
    if err != nil {
        t.Fatalf("get: %v", err)
    }
    if got.Status != StatusCompleted || got.Result == nil || got.Result.Summary != "s" {
        t.Fatalf("unexpected record %+v", got)
    }
    if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
        t.Fatalf("updatedAt went backwards")
    }

    table.Delete("p1")
    if _, err := table.Get("p1"); !errors.Is(err, ErrProcessNotFound) {
        t.Fatalf("expected not-found after delete, got %v", err)
    }
    if table.Len() != 0 {
        t.Fatalf("table not empty after delete")
    }
}

func TestProcessTable_Fail(t *testing.T) {
    table := NewProcessTable()
    table.Create("p2", extract.Content{})

    if err := table.Fail("p2", "backend unreachable"); err != nil {
        t.Fatalf("fail: %v", err)
    }
    got, err := table.Get("p2")
    if err != nil {
        t.Fatalf("get: %v", err)
    }
    if got.Status != StatusFailed || got.Error != "backend unreachable" {
        t.Fatalf("unexpected failed record %+v", got)
    }
}

func TestProcessTable_UnknownID(t *testing.T) {
    table := NewProcessTable()
    if err := table.Complete("nope", analyze.Result{}); !errors.Is(err, ErrProcessNotFound) {
        t.Fatalf("expected not-found, got %v", err)
    }
    if err := table.Fail("nope", "x"); !errors.Is(err, ErrProcessNotFound) {
        t.Fatalf("expected not-found, got %v", err)
    }
}
