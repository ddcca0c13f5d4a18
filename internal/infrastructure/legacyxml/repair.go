package legacyxml

import "strings"

// RepairTruncated re-terminates a document whose read was cancelled
// mid-stream. The partial buffer is trimmed back to the last complete
// record boundary (case-insensitive close-tag search) and the root closing
// tag is appended; when no complete record exists, the root closer is
// appended to the buffer as-is. Any partially-read trailing record is
// discarded by the trim, and so is the original root closer if the read
// happened to finish, so the result is always consistently terminated.
func RepairTruncated(doc, recordTag, rootTag string) string {
	lower := strings.ToLower(doc)
	closeTag := "</" + strings.ToLower(recordTag) + ">"
	if i := strings.LastIndex(lower, closeTag); i >= 0 {
		return doc[:i+len(closeTag)] + "\n</" + rootTag + ">"
	}
	return doc + "\n</" + rootTag + ">"
}

// CountClosingTags counts complete record close tags in a buffer,
// case-insensitively. The streaming fetch uses it to decide when a
// caller-specified record limit has been reached.
func CountClosingTags(buf, recordTag string) int {
	return strings.Count(strings.ToLower(buf), "</"+strings.ToLower(recordTag)+">")
}
