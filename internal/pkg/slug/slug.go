// Package slug derives URL-safe identifiers from human-readable names.
package slug

import "strings"

// Slugify lowercases the name, drops everything outside [a-z0-9 space -],
// collapses whitespace runs into single hyphens, collapses repeated hyphens
// and trims hyphens from both ends. Idempotent on already-valid slugs.
// Uniqueness is the caller's concern.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r == '-':
			b.WriteByte('-')
		}
	}

	out := b.String()
	out = strings.Join(strings.Fields(out), "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
