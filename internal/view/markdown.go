package view

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Markdown 将后台录入的 Markdown 渲染为经过清洗的 HTML。
func Markdown(source string) template.HTML {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(trimmed), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(trimmed))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// MarkdownPtr renders an optional column.
func MarkdownPtr(source *string) template.HTML {
	if source == nil {
		return ""
	}
	return Markdown(*source)
}
