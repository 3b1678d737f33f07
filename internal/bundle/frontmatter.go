package bundle

import (
	"bytes"
	"strings"
)

// delimiter is the frontmatter fence line prefix.
var delimiter = []byte("---")

// SplitFrontmatter splits SKILL.md content into the frontmatter block and
// the documentation body. The content must begin with a "---" line and the
// closing "---" is searched strictly after the opening fence. ok is false
// when either delimiter is missing; front then holds nothing.
func SplitFrontmatter(content []byte) (front, body []byte, ok bool) {
	if !bytes.HasPrefix(content, delimiter) {
		return nil, nil, false
	}
	if len(content) < 4 {
		return nil, nil, false
	}

	end := bytes.Index(content[4:], delimiter)
	if end < 0 {
		return nil, nil, false
	}
	end += 4

	front = content[4:end]

	// Body starts after the closing fence line.
	body = content[end+len(delimiter):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}

	return front, body, true
}

// HasField reports whether a field name appears anywhere in the frontmatter
// block, case-insensitively. This is the coarse presence probe used by the
// validator; ExtractField-style line matching is a separate, stricter check.
func HasField(front []byte, field string) bool {
	return strings.Contains(strings.ToLower(string(front)), strings.ToLower(field))
}
