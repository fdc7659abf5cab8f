// Package web embeds the HTML templates and static assets served by the router.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed template/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template with funcs available.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "template/*.html")
}

// Static returns the bundled css/js assets rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
