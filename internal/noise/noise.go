// Package noise removes non-content subtrees (navigation, ads, social
// widgets, comments) from a DOM region before its text is treated as
// article content.
package noise

import (
    "strings"

    "github.com/PuerkitoBio/goquery"
    "github.com/rs/zerolog/log"
)

// DefaultDenylist is the ordered removal list applied before residual text
// is accepted as content. Grouped as: structural chrome, promotional,
// social, discussion/meta, and raw non-content elements.
var DefaultDenylist = []string{
    // structural chrome
    "nav", "header", "footer", "aside",
    ".sidebar", ".side-bar", "#sidebar",
    ".menu", ".navigation", ".breadcrumb",
    // promotional
    ".ad", ".ads", ".advert", ".advertisement", ".banner",
    ".sponsored", ".sponsor", ".affiliate", ".promo",
    "[class*=\"-ad-\"]", "[id*=\"google_ads\"]",
    // social
    ".share", ".social", ".social-share", ".social-media",
    "[class*=\"share-\"]", "[class*=\"social-\"]",
    // discussion and meta
    ".comments", ".comment", "#comments", ".related", ".related-posts",
    ".tags", ".tag-list", ".byline", ".author-box", ".newsletter",
    // raw non-content elements
    "script", "style", "noscript", "iframe", "form", "input", "button",
    "select", "textarea",
}

// Strip clones sel, removes every denylist match from the clone, and returns
// the residual text. The live document is never mutated. A pattern that is
// malformed or matches nothing is skipped; one bad selector never aborts
// the pass.
func Strip(sel *goquery.Selection, denylist []string) string {
    if sel == nil || sel.Length() == 0 {
        return ""
    }
    clone := sel.Clone()
    for _, pattern := range denylist {
        removeMatches(clone, pattern)
    }
    return strings.TrimSpace(clone.Text())
}

// removeMatches applies one denylist pattern, isolating selector parse
// panics so a malformed pattern cannot take down the sweep.
func removeMatches(root *goquery.Selection, pattern string) {
    defer func() {
        if r := recover(); r != nil {
            log.Debug().Str("selector", pattern).Interface("panic", r).
                Msg("skipping malformed noise selector")
        }
    }()
    root.Find(pattern).Remove()
}
