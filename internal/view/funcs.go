package view

import (
	"encoding/json"
	"html/template"
	"time"
)

// FuncMap 返回模板使用的辅助函数。
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"markdown":    Markdown,
		"markdownPtr": MarkdownPtr,
		"deref":       Deref,
		"formatDate":  FormatDate,
		"inputDate":   InputDate,
		"toJSON":      ToJSON,
	}
}

// Deref returns the pointed-to string or "".
func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// FormatDate renders dates the way visitors read them, e.g. "June 20, 2026".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("January 2, 2006")
}

// InputDate formats t for <input type="date">.
func InputDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("2006-01-02")
}

// ToJSON embeds a value in an inline script.
func ToJSON(value interface{}) template.JS {
	raw, err := json.Marshal(value)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(raw)
}
