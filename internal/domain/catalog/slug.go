package catalog

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateSlug derives a URL-safe slug from a product name: lowercase,
// non-alphanumeric characters stripped, runs of whitespace collapsed to a
// single hyphen. Deterministic for a given name.
func GenerateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// NextAvailableSlug disambiguates a base slug against the set of slugs
// already in use, appending -1, -2, ... until a free one is found. The
// caller is responsible for registering the returned slug in the set.
func NextAvailableSlug(base string, used map[string]struct{}) string {
	if _, taken := used[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}
