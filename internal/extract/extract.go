// Package extract locates the main article region of a parsed page and
// assembles it with best-effort metadata. Strategies are layered: a
// site-specific selector table first, then a generic selector chain, then a
// body-wide sweep, then a largest-text-block scan, and finally the raw body
// text as a last resort.
package extract

import (
    "strings"

    "github.com/pagesift/pagesift/internal/noise"
)

// Mode selects the content length budget for a pass.
type Mode int

const (
    // ModeArticle is the full article budget used for analysis.
    ModeArticle Mode = iota
    // ModeQuick is the shorter budget used for quick previews.
    ModeQuick
)

const (
    articleBudget = 10000
    quickBudget   = 5000

    // DefaultMinContentLength is the threshold below which a candidate
    // region is rejected and the next strategy is tried.
    DefaultMinContentLength = 100
)

// Quality annotates how the winning text was obtained.
type Quality string

const (
    // QualityOK means a selector-driven strategy produced the text.
    QualityOK Quality = "ok"
    // QualityLow means the last-resort raw body fallback produced the
    // text; callers must not treat it as a content signal.
    QualityLow Quality = "low"
    // QualityEmpty means every strategy yielded nothing.
    QualityEmpty Quality = "empty"
)

// Metadata carries best-effort page attributes. Absent values are empty
// strings or zero, never a nil that can crash a consumer.
type Metadata struct {
    Title              string  `json:"title"`
    URL                string  `json:"url"`
    Domain             string  `json:"domain"`
    Description        string  `json:"description"`
    Author             string  `json:"author"`
    PublishDate        string  `json:"publishDate"`
    Keywords           string  `json:"keywords"`
    OGImage            string  `json:"ogImage"`
    CanonicalURL       string  `json:"canonicalUrl"`
    Language           string  `json:"language"`
    ContentLength      int     `json:"contentLength"`
    ReadingTimeMinutes int     `json:"readingTimeMinutes"`
    ExtractedAt        int64   `json:"extractedAt"`
    Quality            Quality `json:"quality"`
    Error              string  `json:"error,omitempty"`
}

// Content is the result of one extraction pass. Text is normalized plain
// text, never raw HTML; its length before truncation is either zero or at
// least the configured minimum content length.
type Content struct {
    Text     string   `json:"text"`
    Metadata Metadata `json:"metadata"`
}

// Options tunes one extraction pass.
type Options struct {
    Mode             Mode
    MinContentLength int
    Denylist         []string
    // Readability enables the go-readability cross-check strategy between
    // the site table and the generic chain. RawHTML must be set for it.
    Readability bool
    RawHTML     []byte
}

func (o Options) budget() int {
    if o.Mode == ModeQuick {
        return quickBudget
    }
    return articleBudget
}

func (o Options) minLength() int {
    if o.MinContentLength > 0 {
        return o.MinContentLength
    }
    return DefaultMinContentLength
}

func (o Options) denylist() []string {
    if len(o.Denylist) > 0 {
        return o.Denylist
    }
    return noise.DefaultDenylist
}

func longEnough(text string, min int) bool {
    return len(strings.TrimSpace(text)) >= min
}
