package analyze

import (
    "context"
    "reflect"
    "strings"
    "testing"
)

func TestSummarize_FirstQualifyingSentences(t *testing.T) {
    text := "This is the first proper sentence of the article. " +
        "Too short. " +
        "Here comes the second qualifying sentence with detail. " +
        "And a third sentence that is long enough to keep! " +
        "A fourth one should never appear in the summary."

    got := Summarize(text, 3)
    want := "This is the first proper sentence of the article. " +
        "Here comes the second qualifying sentence with detail. " +
        "And a third sentence that is long enough to keep."
    if got != want {
        t.Fatalf("Summarize = %q, want %q", got, want)
    }
}

func TestSummarize_TwoQualifyingOfThree(t *testing.T) {
    text := "The first sentence is comfortably long. Short one. The second qualifying sentence is also long."
    got := Summarize(text, 3)
    want := "The first sentence is comfortably long. The second qualifying sentence is also long."
    if got != want {
        t.Fatalf("Summarize = %q, want %q", got, want)
    }
    if !strings.HasSuffix(got, ".") {
        t.Fatalf("summary not period-terminated: %q", got)
    }
}

func TestSummarize_NoQualifyingSentences(t *testing.T) {
    if got := Summarize("Tiny. Bits. Only!", 3); got != "" {
        t.Fatalf("expected empty summary, got %q", got)
    }
    if got := Summarize("", 3); got != "" {
        t.Fatalf("expected empty summary for empty input, got %q", got)
    }
}

func TestWordCount(t *testing.T) {
    cases := []struct {
        in   string
        want int
    }{
        {"", 0},
        {"   ", 0},
        {"one", 1},
        {"one two  three", 3},
        {"line\nbreaks\tcount too", 4},
    }
    for _, tc := range cases {
        if got := WordCount(tc.in); got != tc.want {
            t.Fatalf("WordCount(%q) = %d, want %d", tc.in, got, tc.want)
        }
    }
}

func TestKeyTopics_FrequencyRanking(t *testing.T) {
    got := KeyTopics("the quick brown fox jumps over the lazy dog the fox runs", 5)
    if len(got) == 0 || got[0] != "fox" {
        t.Fatalf("expected top topic \"fox\", got %v", got)
    }
}

func TestKeyTopics_TiesBrokenByFirstOccurrence(t *testing.T) {
    got := KeyTopics("zebra apple zebra apple mango", 5)
    want := []string{"zebra", "apple", "mango"}
    if !reflect.DeepEqual(got, want) {
        t.Fatalf("KeyTopics = %v, want %v", got, want)
    }
}

func TestKeyTopics_StripsSymbolsAndCaps(t *testing.T) {
    got := KeyTopics("Economy, economy; ECONOMY! market... market budget?", 2)
    want := []string{"economy", "market"}
    if !reflect.DeepEqual(got, want) {
        t.Fatalf("KeyTopics = %v, want %v", got, want)
    }
}

func TestKeyTopics_AtMostFive(t *testing.T) {
    got := KeyTopics("alpha bravo charlie delta echo foxtrot golf hotel", 5)
    if len(got) != 5 {
        t.Fatalf("expected 5 topics, got %d: %v", len(got), got)
    }
}

func TestStatisticalEngine_Analyze(t *testing.T) {
    text := "The parliament passed the budget bill on Tuesday evening. " +
        "Opposition parties criticized the spending plan sharply. " +
        "Analysts expect markets to react within days."
    res, err := StatisticalEngine{}.Analyze(context.Background(), Request{
        Content: text,
        URL:     "https://example.com/a",
        Title:   "Budget passes",
    })
    if err != nil {
        t.Fatalf("Analyze returned error: %v", err)
    }
    if res.WordCount != WordCount(text) {
        t.Fatalf("word count %d, want %d", res.WordCount, WordCount(text))
    }
    if res.ReadingTime < 1 {
        t.Fatalf("reading time must be at least 1, got %d", res.ReadingTime)
    }
    if res.Sentiment != PlaceholderSentiment {
        t.Fatalf("sentiment %q, want placeholder", res.Sentiment)
    }
    if len(res.KeyTopics) == 0 || len(res.KeyTopics) > 5 {
        t.Fatalf("unexpected topic count: %v", res.KeyTopics)
    }
    if res.URL != "https://example.com/a" || res.Title != "Budget passes" {
        t.Fatalf("request fields not carried through: %+v", res)
    }
    if res.Summary == "" {
        t.Fatalf("expected non-empty summary")
    }
}

func TestStatisticalEngine_EmptyInput(t *testing.T) {
    res, err := StatisticalEngine{}.Analyze(context.Background(), Request{})
    if err != nil {
        t.Fatalf("Analyze returned error: %v", err)
    }
    if res.WordCount != 0 {
        t.Fatalf("empty input must report zero words, got %d", res.WordCount)
    }
    if res.ReadingTime != 1 {
        t.Fatalf("reading time floor is 1, got %d", res.ReadingTime)
    }
}
