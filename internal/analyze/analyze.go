// Package analyze computes lightweight text analytics over normalized
// article text: an extractive summary, word count, reading time and top
// frequent topics. The statistical engine is the default; an LLM-backed
// engine plugs into the same seam when a model is configured.
package analyze

import (
    "context"
    "strings"
    "time"
    "unicode"
)

// Result holds the analytics derived from one piece of extracted content.
// Immutable once produced.
type Result struct {
    Summary     string   `json:"summary"`
    WordCount   int      `json:"wordCount"`
    ReadingTime int      `json:"readingTime"`
    KeyTopics   []string `json:"keyTopics"`
    Sentiment   string   `json:"sentiment"`
    ExtractedAt int64    `json:"extractedAt"`
    URL         string   `json:"url"`
    Title       string   `json:"title"`
}

// Request is the analysis boundary input.
type Request struct {
    Content string
    URL     string
    Title   string
}

// Engine is the seam where a real inference backend plugs in. The
// statistical engine below is the stand-in implementation.
type Engine interface {
    Analyze(ctx context.Context, req Request) (Result, error)
}

const (
    summarySentences  = 3
    minSentenceLength = 20
    topicCount        = 5
    minTopicLength    = 3
    wordsPerMinute    = 200

    // PlaceholderSentiment is fixed: sentiment is not computed. Documented
    // limitation, not a bug.
    PlaceholderSentiment = "neutral"
)

// StatisticalEngine derives all analytics from the text itself. It is pure
// and synchronous; Analyze never fails.
type StatisticalEngine struct {
    // Sentences caps the extractive summary. Zero means the default of 3.
    Sentences int
}

func (e StatisticalEngine) Analyze(_ context.Context, req Request) (Result, error) {
    sentences := e.Sentences
    if sentences <= 0 {
        sentences = summarySentences
    }
    words := WordCount(req.Content)
    return Result{
        Summary:     Summarize(req.Content, sentences),
        WordCount:   words,
        ReadingTime: readingMinutes(words),
        KeyTopics:   KeyTopics(req.Content, topicCount),
        Sentiment:   PlaceholderSentiment,
        ExtractedAt: time.Now().Unix(),
        URL:         req.URL,
        Title:       req.Title,
    }, nil
}

// Summarize joins the first max sentences of at least minSentenceLength
// trimmed characters, terminated with a period. Sentence boundaries are the
// ASCII terminators '.', '!' and '?'.
func Summarize(text string, max int) string {
    var kept []string
    for _, fragment := range splitSentences(text) {
        fragment = strings.TrimSpace(fragment)
        if len(fragment) < minSentenceLength {
            continue
        }
        kept = append(kept, fragment)
        if len(kept) == max {
            break
        }
    }
    if len(kept) == 0 {
        return ""
    }
    return strings.Join(kept, ". ") + "."
}

func splitSentences(text string) []string {
    return strings.FieldsFunc(text, func(r rune) bool {
        return r == '.' || r == '!' || r == '?'
    })
}

// WordCount counts whitespace-delimited tokens. Empty or blank input
// reports zero words, not the one-empty-token artifact of a naive split.
func WordCount(text string) int {
    return len(strings.Fields(text))
}

// stopwords are filler tokens never reported as topics. Length alone is a
// poor significance filter: it would drop short subjects like "fox" while
// keeping filler like "their".
var stopwords = map[string]bool{
    "the": true, "and": true, "for": true, "are": true, "but": true,
    "not": true, "you": true, "all": true, "can": true, "had": true,
    "has": true, "have": true, "was": true, "were": true, "his": true,
    "her": true, "they": true, "them": true, "this": true, "that": true,
    "with": true, "from": true, "over": true, "into": true, "about": true,
    "will": true, "would": true, "there": true, "their": true, "been": true,
    "more": true, "also": true, "after": true, "when": true, "which": true,
    "than": true, "its": true, "who": true, "what": true, "said": true,
}

// KeyTopics returns the top max significant tokens by frequency. The text
// is lower-cased and stripped of everything that is not a letter, digit,
// underscore or space before tokenizing; tokens shorter than three
// characters and stopwords are dropped. Ties are broken by first occurrence
// so the ranking is deterministic.
func KeyTopics(text string, max int) []string {
    cleaned := stripSymbols(strings.ToLower(text))

    counts := make(map[string]int)
    order := make(map[string]int)
    var tokens []string
    for i, token := range strings.Fields(cleaned) {
        if len(token) < minTopicLength || stopwords[token] {
            continue
        }
        if _, seen := counts[token]; !seen {
            order[token] = i
            tokens = append(tokens, token)
        }
        counts[token]++
    }

    // Insertion sort by descending count, first occurrence breaking ties.
    // Topic lists are tiny; no need for anything fancier.
    for i := 1; i < len(tokens); i++ {
        for j := i; j > 0; j-- {
            a, b := tokens[j-1], tokens[j]
            if counts[b] > counts[a] || (counts[b] == counts[a] && order[b] < order[a]) {
                tokens[j-1], tokens[j] = b, a
                continue
            }
            break
        }
    }

    if len(tokens) > max {
        tokens = tokens[:max]
    }
    return tokens
}

func stripSymbols(s string) string {
    var b strings.Builder
    b.Grow(len(s))
    for _, r := range s {
        if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
            b.WriteRune(r)
        }
    }
    return b.String()
}

// readingMinutes mirrors the extraction-side estimate but never reports
// less than one minute for a produced result.
func readingMinutes(words int) int {
    if words <= 0 {
        return 1
    }
    return (words + wordsPerMinute - 1) / wordsPerMinute
}
