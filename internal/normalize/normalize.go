package normalize

import (
    "strings"
    "unicode"
)

// Normalize collapses whitespace runs to single spaces, strips ASCII and C1
// control characters, trims the result, and hard-truncates it to maxLength
// runes. It always returns a string; empty input yields empty output.
func Normalize(raw string, maxLength int) string {
    if raw == "" || maxLength <= 0 {
        return ""
    }
    var b strings.Builder
    b.Grow(len(raw))
    lastSpace := true // leading whitespace is dropped
    for _, r := range raw {
        // Whitespace wins over the control check so tabs and newlines
        // collapse into the surrounding run instead of vanishing.
        if unicode.IsSpace(r) {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        if isControl(r) {
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    // Trim after the cut: truncation can land just past a word and leave
    // a trailing space, which would break idempotence.
    return strings.TrimRight(Truncate(b.String(), maxLength), " ")
}

// Truncate cuts s to at most maxLength runes. The cut is hard: no word
// boundary is preserved, but a multi-byte rune is never split.
func Truncate(s string, maxLength int) string {
    if maxLength <= 0 {
        return ""
    }
    n := 0
    for i := range s {
        if n == maxLength {
            return s[:i]
        }
        n++
    }
    return s
}

// isControl reports whether r falls in the C0 (0x00-0x1F, 0x7F) or
// C1 (0x80-0x9F) control ranges.
func isControl(r rune) bool {
    return r < 0x20 || (r >= 0x7F && r <= 0x9F)
}
