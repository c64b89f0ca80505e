package noise

import (
    "strings"
    "testing"

    "github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
    t.Helper()
    doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
    if err != nil {
        t.Fatalf("parse fixture: %v", err)
    }
    return doc
}

func TestStrip_RemovesDenylistedSubtrees(t *testing.T) {
    doc := docFrom(t, `<html><body><article>
        <nav>Home | About</nav>
        <p>The actual story text survives the sweep.</p>
        <div class="ads">Buy now!</div>
        <div class="social-share">Share this</div>
        <div class="comments">Great post!</div>
        <script>var x = 1;</script>
        <p>Second paragraph also survives.</p>
    </article></body></html>`)

    got := Strip(doc.Find("article"), DefaultDenylist)
    for _, want := range []string{"actual story text", "Second paragraph"} {
        if !strings.Contains(got, want) {
            t.Fatalf("expected %q in residual text, got %q", want, got)
        }
    }
    for _, banned := range []string{"Home | About", "Buy now", "Share this", "Great post", "var x"} {
        if strings.Contains(got, banned) {
            t.Fatalf("noise %q leaked into residual text %q", banned, got)
        }
    }
}

func TestStrip_DoesNotMutateLiveDocument(t *testing.T) {
    doc := docFrom(t, `<html><body><div id="root">
        <p>Keep me.</p><div class="ads">Noise</div>
    </div></body></html>`)

    _ = Strip(doc.Find("#root"), DefaultDenylist)
    if live := doc.Find("#root").Text(); !strings.Contains(live, "Noise") {
        t.Fatalf("live document was mutated, text now %q", live)
    }
}

func TestStrip_MalformedSelectorIsIsolated(t *testing.T) {
    doc := docFrom(t, `<html><body><div id="root">
        <p>Content stays.</p><div class="ads">gone</div>
    </div></body></html>`)

    denylist := []string{"p[", "!!!", ".ads"}
    got := Strip(doc.Find("#root"), denylist)
    if !strings.Contains(got, "Content stays.") {
        t.Fatalf("content lost after malformed selectors: %q", got)
    }
    if strings.Contains(got, "gone") {
        t.Fatalf("valid selector after malformed ones was not applied: %q", got)
    }
}

func TestStrip_Deterministic(t *testing.T) {
    html := `<html><body><main>
        <p>Alpha beta gamma.</p><aside>sidebar</aside>
        <div class="related">links</div><p>Delta epsilon.</p>
    </main></body></html>`

    var first string
    for i := 0; i < 5; i++ {
        doc := docFrom(t, html)
        got := Strip(doc.Find("main"), DefaultDenylist)
        if i == 0 {
            first = got
            continue
        }
        if got != first {
            t.Fatalf("run %d differs: %q vs %q", i, got, first)
        }
    }
}

func TestStrip_EmptySelection(t *testing.T) {
    doc := docFrom(t, `<html><body></body></html>`)
    if got := Strip(doc.Find("#missing"), DefaultDenylist); got != "" {
        t.Fatalf("expected empty result for empty selection, got %q", got)
    }
    if got := Strip(nil, DefaultDenylist); got != "" {
        t.Fatalf("expected empty result for nil selection, got %q", got)
    }
}
