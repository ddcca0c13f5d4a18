package legacyxml

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// imageSentinel marks an unused numbered image slot in the legacy feed
const imageSentinel = "none"

var (
	patternMu    sync.Mutex
	patternCache = make(map[string]*regexp.Regexp)
)

// tagPattern compiles (and caches) a bounded non-greedy pattern matching
// one element's inner content. The set of tag names is small and fixed.
func tagPattern(tag string, foldCase bool) *regexp.Regexp {
	key := tag
	prefix := "(?s)"
	if foldCase {
		key = "(?i)" + tag
		prefix = "(?is)"
	}
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[key]; ok {
		return re
	}
	re := regexp.MustCompile(prefix + `<` + regexp.QuoteMeta(tag) + `(?:\s[^>]*)?>(.*?)</` + regexp.QuoteMeta(tag) + `\s*>`)
	patternCache[key] = re
	return re
}

// ExtractValue pulls the first occurrence of a scalar field out of a record
// fragment, matching the tag name case-insensitively. The value is trimmed,
// CDATA-unwrapped, and entity-decoded. Missing fields yield "".
func ExtractValue(fragment, tag string) string {
	v, _ := matchInner(fragment, tag, true)
	return DecodeEntities(unwrapCDATA(strings.TrimSpace(v)))
}

// ExtractEither looks a product field up under both dialect spellings,
// lowercase first. The lowercase dialect takes precedence when a fragment
// somehow carries both.
func ExtractEither(fragment, lowerTag, pascalTag string) string {
	if v, ok := matchInner(fragment, lowerTag, false); ok {
		return DecodeEntities(unwrapCDATA(strings.TrimSpace(v)))
	}
	v, _ := matchInner(fragment, pascalTag, false)
	return DecodeEntities(unwrapCDATA(strings.TrimSpace(v)))
}

// ExtractBlock returns the raw inner content of a nested child block
// (e.g. Billing, Totals, Payment) for further extraction. No entity
// decoding is applied; scalars inside the block go through ExtractValue.
func ExtractBlock(fragment, tag string) string {
	v, _ := matchInner(fragment, tag, true)
	return strings.TrimSpace(v)
}

func matchInner(fragment, tag string, foldCase bool) (string, bool) {
	m := tagPattern(tag, foldCase).FindStringSubmatch(fragment)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractNumbered collects the values of numbered repeated fields
// (base1..baseMax) into an ordered list, skipping empty slots and the
// "none" sentinel.
func ExtractNumbered(fragment, base string, max int) []string {
	var out []string
	for i := 1; i <= max; i++ {
		v := ExtractValue(fragment, base+strconv.Itoa(i))
		if v == "" || strings.EqualFold(v, imageSentinel) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SplitBlocks extracts every fragment bounded by the given tag's open/close
// pair using direct substring search with exact case. Each fragment is copied
// so multi-megabyte parent buffers are not retained by reference.
func SplitBlocks(doc, tag string) []string {
	return splitBlocks(doc, doc, tag)
}

// SplitBlocksFold is SplitBlocks with case-insensitive tag matching, used
// for the product feed where legacy versions disagree on tag casing.
func SplitBlocksFold(doc, tag string) []string {
	return splitBlocks(doc, strings.ToLower(doc), strings.ToLower(tag))
}

// splitBlocks scans the search text for tag boundaries and slices the
// original document at the same offsets. search must be a same-length
// transform of doc (doc itself, or its lowercase form).
func splitBlocks(doc, search, tag string) []string {
	open := "<" + tag
	closeTag := "</" + tag + ">"
	var out []string
	pos := 0
	for {
		i := strings.Index(search[pos:], open)
		if i < 0 {
			break
		}
		i += pos
		after := i + len(open)
		if after >= len(search) {
			break
		}
		// Reject prefix matches like <product> vs <productid>.
		if c := search[after]; c != '>' && c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			pos = after
			continue
		}
		gt := strings.IndexByte(search[after:], '>')
		if gt < 0 {
			break
		}
		bodyStart := after + gt + 1
		j := strings.Index(search[bodyStart:], closeTag)
		if j < 0 {
			break
		}
		out = append(out, strings.Clone(doc[bodyStart:bodyStart+j]))
		pos = bodyStart + j + len(closeTag)
	}
	return out
}

// ContainsTag reports whether the fragment contains an element with the
// given name, case-insensitively. Used to infer payment methods from which
// child tag is present under a Payment block.
func ContainsTag(fragment, tag string) bool {
	search := strings.ToLower(fragment)
	open := "<" + strings.ToLower(tag)
	pos := 0
	for {
		i := strings.Index(search[pos:], open)
		if i < 0 {
			return false
		}
		i += pos
		after := i + len(open)
		if after < len(search) {
			switch search[after] {
			case '>', ' ', '\t', '\r', '\n', '/':
				return true
			}
		}
		pos = after
	}
}

// unwrapCDATA strips a CDATA wrapper when the value begins with one
func unwrapCDATA(v string) string {
	if !strings.HasPrefix(v, "<![CDATA[") {
		return v
	}
	v = strings.TrimPrefix(v, "<![CDATA[")
	v = strings.TrimSuffix(v, "]]>")
	return strings.TrimSpace(v)
}

// namedEntities covers the references the legacy feed actually emits
var namedEntities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"ndash":  "–",
	"mdash":  "—",
	"pound":  "£",
	"euro":   "€",
	"hellip": "…",
}

var entityRef = regexp.MustCompile(`&(#x?[0-9a-fA-F]+|[a-zA-Z]+);`)

// DecodeEntities resolves named entities plus decimal and hex character
// references. Unknown references are left as-is rather than dropped.
func DecodeEntities(v string) string {
	if !strings.ContainsRune(v, '&') {
		return v
	}
	return entityRef.ReplaceAllStringFunc(v, func(ref string) string {
		body := ref[1 : len(ref)-1]
		if body[0] == '#' {
			num := body[1:]
			base := 10
			if len(num) > 0 && (num[0] == 'x' || num[0] == 'X') {
				num = num[1:]
				base = 16
			}
			if n, err := strconv.ParseInt(num, base, 32); err == nil && n > 0 {
				return string(rune(n))
			}
			return ref
		}
		if repl, ok := namedEntities[strings.ToLower(body)]; ok {
			return repl
		}
		return ref
	})
}
