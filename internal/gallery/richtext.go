package gallery

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown   = goldmark.New()
	textPolicy = newTextPolicy()
)

func newTextPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// richText renders one dictionary paragraph as sanitised HTML. Markdown
// failures fall back to escaped text.
func (r *Renderer) richText(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		r.log.WithError(err).Debug("markdown convert")
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(textPolicy.SanitizeBytes(buf.Bytes()))
}
