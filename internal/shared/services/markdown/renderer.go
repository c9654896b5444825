// Package markdown renders notification text to sanitized HTML and reduces
// inbound HTML mail bodies to plain text.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Renderer interface {
	ToHTMLSanitized(markdown string) (string, error)
	StripHTML(htmlContent string) string
}

type renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

var (
	blockBreaks = regexp.MustCompile(`(?i)<\s*(br\s*/?|/p|/div|/li|/tr|/h[1-6])\s*>`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)
	return &renderer{
		md:     md,
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *renderer) ToHTMLSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.ugc.Sanitize(buf.String()), nil
}

// StripHTML drops every tag and keeps line structure for block elements.
func (r *renderer) StripHTML(htmlContent string) string {
	withBreaks := blockBreaks.ReplaceAllString(htmlContent, "\n$0")
	text := html.UnescapeString(r.strict.Sanitize(withBreaks))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
