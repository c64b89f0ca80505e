package extract

import (
    "strings"

    "github.com/PuerkitoBio/goquery"
    "golang.org/x/net/html"

    "github.com/pagesift/pagesift/internal/noise"
)

// genericSelectors is the fallback chain for unknown sites: semantic tags
// first, then common class and id conventions.
var genericSelectors = []string{
    "article",
    "main",
    "[role=\"main\"]",
    ".article-content",
    ".article-body",
    ".post-content",
    ".entry-content",
    ".story-body",
    ".main-content",
    "#content",
    ".content",
}

// rejectTags are element types never considered by the largest-block scan.
var rejectTags = map[string]bool{
    "nav": true, "header": true, "footer": true, "aside": true,
    "script": true, "style": true, "noscript": true, "form": true,
    "iframe": true, "button": true, "select": true, "input": true,
}

// rejectMarkers are class/id substrings that disqualify a candidate block.
// These are best-effort heuristics; no guarantee stronger than the listed
// keywords should be assumed.
var rejectMarkers = []string{
    "nav", "menu", "sidebar", "banner", "footer", "header",
    "comment", "share", "social", "promo", "advert", "widget",
}

// generic extracts content from an unknown page. It degrades through its
// own fallback chain and always returns something: selector match, then
// body-wide noise sweep, then largest text block, then the raw body text.
// The returned quality is QualityLow only for the raw-body last resort.
func generic(doc *goquery.Document, min int, denylist []string) (string, Quality) {
    for _, selector := range genericSelectors {
        el := findFirst(doc, selector)
        if el == nil {
            continue
        }
        if longEnough(el.Text(), min) {
            return noise.Strip(el, denylist), QualityOK
        }
    }

    body := doc.Find("body")
    if swept := noise.Strip(body, denylist); longEnough(swept, min) {
        return swept, QualityOK
    }

    if block := largestBlock(body, min); block != "" {
        return block, QualityOK
    }

    // Last resort. Callers must not read this as a content-quality signal.
    return strings.TrimSpace(body.Text()), QualityLow
}

// largestBlock walks every element under body in depth-first pre-order and
// keeps the one with the longest trimmed text of at least min characters.
// Elements whose tag, class or id looks like page chrome are rejected.
// Ties go to the first-encountered node.
func largestBlock(body *goquery.Selection, min int) string {
    var best string
    var bestLen int
    var walk func(n *html.Node)
    walk = func(n *html.Node) {
        if n.Type == html.ElementNode && !rejected(n) {
            text := strings.TrimSpace(nodeText(n))
            if len(text) >= min && len(text) > bestLen {
                best = text
                bestLen = len(text)
            }
        }
        for c := n.FirstChild; c != nil; c = c.NextSibling {
            walk(c)
        }
    }
    // Descendants only: body itself is never a candidate, otherwise the
    // scan would trivially settle on the whole page.
    for _, n := range body.Nodes {
        for c := n.FirstChild; c != nil; c = c.NextSibling {
            walk(c)
        }
    }
    return best
}

func rejected(n *html.Node) bool {
    if rejectTags[strings.ToLower(n.Data)] {
        return true
    }
    for _, attr := range n.Attr {
        key := strings.ToLower(attr.Key)
        if key != "class" && key != "id" {
            continue
        }
        for _, token := range strings.Fields(strings.ToLower(attr.Val)) {
            if token == "ad" || token == "ads" {
                return true
            }
            for _, marker := range rejectMarkers {
                if strings.Contains(token, marker) {
                    return true
                }
            }
        }
    }
    return false
}

func nodeText(n *html.Node) string {
    var b strings.Builder
    var collect func(cur *html.Node)
    collect = func(cur *html.Node) {
        if cur.Type == html.TextNode {
            b.WriteString(cur.Data)
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            collect(c)
        }
    }
    collect(n)
    return b.String()
}
