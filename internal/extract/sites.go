package extract

import (
    "sync"

    "github.com/PuerkitoBio/goquery"

    "github.com/pagesift/pagesift/internal/noise"
)

// siteSelectors maps a site key (lower-cased host without scheme, port or
// leading www.) to an ordered list of high-precision content selectors,
// most specific first. Supporting a new site is a data addition here,
// never a new code branch.
var siteSelectors = map[string][]string{
    "vnexpress.net": {
        ".fck_detail",
        "article.fck_detail",
        ".content-detail",
    },
    "tuoitre.vn": {
        ".detail-content",
        "#main-detail-body",
        ".content.fck",
    },
    "thanhnien.vn": {
        ".detail-content",
        "#abody",
        ".pswp-content",
    },
    "dantri.com.vn": {
        ".singular-content",
        ".dt-news__content",
        ".e-magazine__body",
    },
    "vietnamnet.vn": {
        ".maincontent",
        "#ArticleContent",
        ".ArticleContent",
    },
}

var sitesMu sync.RWMutex

// RegisterSite installs or replaces the selector list for a site key.
// Registration is idempotent: repeating the same key and list is a no-op in
// effect, so configuration can be applied once per process without a guard
// on the caller's side.
func RegisterSite(key string, selectors []string) {
    if key == "" || len(selectors) == 0 {
        return
    }
    sitesMu.Lock()
    defer sitesMu.Unlock()
    siteSelectors[key] = append([]string(nil), selectors...)
}

// forSite tries the selector list registered for key against doc, in order.
// The first matching element is noise-stripped and its residual text
// returned. An empty string tells the orchestrator to fall through to
// generic extraction.
func forSite(doc *goquery.Document, key string, denylist []string) string {
    sitesMu.RLock()
    selectors, ok := siteSelectors[key]
    sitesMu.RUnlock()
    if !ok {
        return ""
    }
    for _, selector := range selectors {
        el := findFirst(doc, selector)
        if el == nil {
            continue
        }
        return noise.Strip(el, denylist)
    }
    return ""
}

// findFirst resolves a selector to its first match, isolating selector
// parse panics the same way the noise sweep does.
func findFirst(doc *goquery.Document, selector string) (sel *goquery.Selection) {
    defer func() {
        if recover() != nil {
            sel = nil
        }
    }()
    found := doc.Find(selector)
    if found.Length() == 0 {
        return nil
    }
    return found.First()
}
