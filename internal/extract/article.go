package extract

import (
    "bytes"
    "net/url"
    "strings"
    "time"

    "github.com/PuerkitoBio/goquery"
    readability "github.com/go-shiori/go-readability"
    "github.com/rs/zerolog/log"

    "github.com/pagesift/pagesift/internal/normalize"
)

// titleSelectors is the resolution order for the article title, most
// specific heading classes first, bare h1 last. The document <title> and a
// literal "Untitled" close the chain.
var titleSelectors = []string{
    "h1.article-title",
    "h1.post-title",
    "h1.entry-title",
    ".article-title",
    ".post-title",
    ".entry-title",
    ".title-detail",
    "h1.title",
    "h1",
}

// Article runs the full extraction pass over a parsed document: site table,
// optional readability cross-check, generic chain, then normalization and
// metadata assembly. It never panics outward; a strategy that blows up is
// treated as having yielded nothing. A zero-length result is a valid output
// state, annotated in the metadata rather than returned as an error.
func Article(doc *goquery.Document, pageURL string, opts Options) Content {
    min := opts.minLength()
    denylist := opts.denylist()

    key := SiteKey(pageURL)
    text, quality := "", QualityOK

    if t := tryStrategy(func() string { return forSite(doc, key, denylist) }); longEnough(t, min) {
        text = t
    }
    if text == "" && opts.Readability && len(opts.RawHTML) > 0 {
        if t := tryStrategy(func() string { return fromReadability(opts.RawHTML, pageURL) }); longEnough(t, min) {
            text = t
        }
    }
    if text == "" {
        text, quality = generic(doc, min, denylist)
        if !longEnough(text, min) {
            // Even the raw-body fallback stays below threshold: report an
            // empty result instead of surfacing junk.
            text = ""
        }
    }

    normalized := normalize.Normalize(text, opts.budget())
    if len(normalized) < min {
        // Whitespace collapse can shrink an accepted candidate below the
        // threshold; the final text is still either empty or long enough.
        normalized = ""
    }
    meta := scanMetadata(doc, pageURL, key)
    meta.Title = resolveTitle(doc)
    meta.ContentLength = len(normalized)
    meta.ReadingTimeMinutes = readingTime(normalized)
    meta.ExtractedAt = time.Now().Unix()
    meta.Quality = quality
    if normalized == "" {
        meta.Quality = QualityEmpty
        meta.Error = "no content found"
    }
    return Content{Text: normalized, Metadata: meta}
}

// SiteKey reduces a page URL to the host key used by the site selector
// table: lower-cased, no scheme or port, no leading www.
func SiteKey(pageURL string) string {
    u, err := url.Parse(pageURL)
    if err != nil {
        return ""
    }
    host := strings.ToLower(u.Hostname())
    return strings.TrimPrefix(host, "www.")
}

// tryStrategy runs one extraction strategy, converting a panic into an
// empty yield so the chain can fall through.
func tryStrategy(fn func() string) (out string) {
    defer func() {
        if r := recover(); r != nil {
            log.Debug().Interface("panic", r).Msg("extraction strategy failed")
            out = ""
        }
    }()
    return fn()
}

func fromReadability(raw []byte, pageURL string) string {
    u, err := url.Parse(pageURL)
    if err != nil {
        return ""
    }
    article, err := readability.FromReader(bytes.NewReader(raw), u)
    if err != nil {
        return ""
    }
    return strings.TrimSpace(article.TextContent)
}

// scanMetadata makes a single pass over the document's meta tags, mapping
// known name/property attributes into the first non-empty match per field.
// Later duplicates for an already-filled field are ignored.
func scanMetadata(doc *goquery.Document, pageURL, key string) Metadata {
    m := Metadata{URL: pageURL, Domain: key}

    doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
        name, ok := s.Attr("name")
        if !ok || name == "" {
            name, _ = s.Attr("property")
        }
        content, _ := s.Attr("content")
        content = strings.TrimSpace(content)
        if content == "" {
            return
        }
        switch strings.ToLower(name) {
        case "description", "og:description":
            setIfEmpty(&m.Description, content)
        case "keywords":
            setIfEmpty(&m.Keywords, content)
        case "author", "article:author":
            setIfEmpty(&m.Author, content)
        case "article:published_time", "article:published-time":
            setIfEmpty(&m.PublishDate, content)
        case "og:image":
            setIfEmpty(&m.OGImage, content)
        }
    })

    if href, ok := doc.Find("link[rel=\"canonical\"]").First().Attr("href"); ok {
        m.CanonicalURL = strings.TrimSpace(href)
    }
    if lang, ok := doc.Find("html").First().Attr("lang"); ok {
        m.Language = strings.TrimSpace(lang)
    }
    return m
}

func setIfEmpty(dst *string, value string) {
    if *dst == "" {
        *dst = value
    }
}

func resolveTitle(doc *goquery.Document) string {
    for _, selector := range titleSelectors {
        el := findFirst(doc, selector)
        if el == nil {
            continue
        }
        if title := strings.TrimSpace(el.Text()); title != "" {
            return title
        }
    }
    if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
        return title
    }
    return "Untitled"
}

// readingTime estimates minutes at 200 words per minute, rounding up.
// Empty text reads in zero minutes.
func readingTime(text string) int {
    words := len(strings.Fields(text))
    if words == 0 {
        return 0
    }
    return (words + 199) / 200
}
