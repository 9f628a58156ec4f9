package preview

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var descPolicy = bluemonday.UGCPolicy()

// RenderDescription renders merchant or AI-drafted description text as
// sanitized HTML. Plain text passes through as a paragraph; markdown
// emphasis and lists are honored.
func RenderDescription(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(descPolicy.SanitizeBytes(buf.Bytes()))
}
