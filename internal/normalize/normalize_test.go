package normalize

import (
    "strings"
    "testing"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
    cases := []struct {
        name string
        in   string
        want string
    }{
        {"spaces", "a  b   c", "a b c"},
        {"tabs and newlines", "a\tb\nc\r\nd", "a b c d"},
        {"leading and trailing", "  \n hello \t ", "hello"},
        {"control chars stripped", "a\x00b\x1fc\x7fd", "abcd"},
        {"c1 controls stripped", "abc", "a bc"},
        {"empty", "", ""},
        {"only whitespace", " \n\t ", ""},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got := Normalize(tc.in, 1000)
            if got != tc.want {
                t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
            }
        })
    }
}

func TestNormalize_Idempotent(t *testing.T) {
    inputs := []string{
        "plain text with   runs",
        "\ttabbed\nand\r\nbroken\x1f",
        strings.Repeat("word ", 500),
        "",
    }
    for _, in := range inputs {
        for _, limit := range []int{5, 100, 10000} {
            once := Normalize(in, limit)
            twice := Normalize(once, limit)
            if once != twice {
                t.Fatalf("not idempotent at limit %d: %q vs %q", limit, once, twice)
            }
        }
    }
}

func TestNormalize_TruncationLandingOnSpace(t *testing.T) {
    // A cut just past a word must not leave a trailing space behind.
    got := Normalize(strings.Repeat("word ", 500), 5)
    if got != "word" {
        t.Fatalf("Normalize = %q, want %q", got, "word")
    }
    if again := Normalize(got, 5); again != got {
        t.Fatalf("not idempotent at the cut point: %q vs %q", got, again)
    }
}

func TestNormalize_LengthBound(t *testing.T) {
    in := strings.Repeat("abc ", 100)
    for _, limit := range []int{0, 1, 7, 50, 399, 400} {
        got := Normalize(in, limit)
        if n := len([]rune(got)); n > limit {
            t.Fatalf("limit %d exceeded: got %d runes", limit, n)
        }
    }
}

func TestTruncate_NeverSplitsRune(t *testing.T) {
    in := "héllo wörld"
    for limit := 0; limit <= len([]rune(in)); limit++ {
        got := Truncate(in, limit)
        if !strings.HasPrefix(in, got) {
            t.Fatalf("Truncate(%q, %d) = %q, not a prefix", in, limit, got)
        }
        if len([]rune(got)) > limit {
            t.Fatalf("Truncate(%q, %d) yielded %d runes", in, limit, len([]rune(got)))
        }
    }
}
