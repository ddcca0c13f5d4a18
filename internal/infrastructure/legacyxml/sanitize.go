// Package legacyxml repairs and dissects the loosely-structured XML emitted
// by the legacy storefront's CGI endpoints. The dialect is inconsistent
// enough (mixed tag casing, HTML entities, bare ampersands, truncated
// documents) that a conformant XML parser would reject recoverable feeds,
// so everything here is built from small, total string operations that
// localize failure to a single field or record.
package legacyxml

import "strings"

// htmlEntityReplacements maps named HTML entities that are not legal in
// bare XML to their numeric character references. Applied after bare
// ampersands are escaped, so well-formed entities survive intact.
var htmlEntityReplacements = [][2]string{
	{"&nbsp;", "&#160;"},
	{"&copy;", "&#169;"},
	{"&reg;", "&#174;"},
	{"&trade;", "&#8482;"},
	{"&bull;", "&#8226;"},
	{"&hellip;", "&#8230;"},
	{"&ndash;", "&#8211;"},
	{"&mdash;", "&#8212;"},
	{"&lsquo;", "&#8216;"},
	{"&rsquo;", "&#8217;"},
	{"&ldquo;", "&#8220;"},
	{"&rdquo;", "&#8221;"},
	{"&middot;", "&#183;"},
	{"&deg;", "&#176;"},
	{"&uuml;", "&#252;"},
	{"&pound;", "&#163;"},
	{"&euro;", "&#8364;"},
	{"&frac12;", "&#189;"},
	{"&sup2;", "&#178;"},
}

// Sanitize repairs a raw legacy feed into parseable XML. It is total and
// idempotent: running it on already-valid XML returns the input unchanged.
func Sanitize(raw string) string {
	out := escapeBareAmpersands(raw)
	for _, pair := range htmlEntityReplacements {
		out = strings.ReplaceAll(out, pair[0], pair[1])
	}
	return out
}

// escapeBareAmpersands converts every `&` that does not open a recognized
// entity or character reference into `&amp;`.
func escapeBareAmpersands(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			continue
		}
		if startsEntity(s[i+1:]) {
			b.WriteByte(c)
			continue
		}
		b.WriteString("&amp;")
	}
	return b.String()
}

// startsEntity reports whether rest begins with the body of an entity or
// character reference: name;, #digits; or #xhex;.
func startsEntity(rest string) bool {
	if rest == "" {
		return false
	}
	i := 0
	if rest[0] == '#' {
		i = 1
		if i < len(rest) && (rest[i] == 'x' || rest[i] == 'X') {
			i++
			start := i
			for i < len(rest) && isHexDigit(rest[i]) {
				i++
			}
			return i > start && i < len(rest) && rest[i] == ';'
		}
		start := i
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		return i > start && i < len(rest) && rest[i] == ';'
	}
	start := i
	for i < len(rest) && isAlphanumeric(rest[i]) {
		i++
	}
	return i > start && i < len(rest) && rest[i] == ';'
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
