package generator

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

// Sanitize trims the model output and strips markdown code fences from the
// very edges. Fence markers inside the body stay untouched: models are told
// to return raw HTML, but many still wrap the whole answer in one fence.
func Sanitize(raw string) string {
	out := strings.TrimSpace(raw)

	if strings.HasPrefix(out, "```html") {
		out = out[len("```html"):]
	} else if strings.HasPrefix(out, "```") {
		out = out[len("```"):]
	}
	if strings.HasSuffix(out, "```") {
		out = out[:len(out)-len("```")]
	}

	return strings.TrimSpace(out)
}

// renderIfMarkdown keeps the artifact presentable when a model ignores the
// raw-HTML instruction and answers in markdown or plain prose. Anything that
// already starts with a tag passes through untouched.
func renderIfMarkdown(s string) string {
	if strings.HasPrefix(strings.TrimSpace(s), "<") {
		return s
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		return s
	}
	return strings.TrimSpace(buf.String())
}
