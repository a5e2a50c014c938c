package veedor

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes their combining marks, so
// that "Pérez" and "Perez" produce the same slug.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe, human-readable identifier from a display name:
// lowercased, accent-stripped, with runs of non-word characters replaced by a
// single dash.
//
// Slugify does not deal with collisions; Merge suffixes colliding slugs in
// encounter order.
func Slugify(name string) string {
	s, _, err := transform.String(stripMarks, strings.ToLower(name))
	if err != nil {
		// Transform only fails on invalid UTF-8; keep the lowercased input
		// and let the rune filter below drop the offending bytes.
		s = strings.ToLower(name)
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
