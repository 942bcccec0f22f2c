package core

import (
	"fmt"
	"hash/fnv"
	"strings"
)

func HashContent(content []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(content)
	return fmt.Sprintf("%016x", h.Sum64())
}

// ETag wraps a content hash as a strong HTTP entity tag.
func ETag(content []byte) string {
	return `"` + HashContent(content) + `"`
}

// ETagMatches reports whether an If-None-Match header value selects etag.
// Comparison is weak: a W/ prefix on either side is ignored.
func ETagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" || etag == "" {
		return false
	}
	if header == "*" {
		return true
	}

	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == want {
			return true
		}
	}
	return false
}
