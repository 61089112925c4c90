// Package web carries the embedded server-rendered page templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var FS embed.FS

// Templates parses every embedded page template.
func Templates() *template.Template {
	return template.Must(template.ParseFS(FS, "templates/*.html"))
}
