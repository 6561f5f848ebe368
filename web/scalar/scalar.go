// Package scalar serves the Scalar API reference page for the generated
// OpenAPI document.
package scalar

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/qit/pkg/module"
)

//go:embed index.html
var staticFS embed.FS

var page = template.Must(template.ParseFS(staticFS, "index.html"))

// NewModule creates a module at basePath whose index renders the API
// reference for the spec served at specURL.
func NewModule(basePath, title, specURL string) (*module.Module, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, map[string]string{
		"Title":   title,
		"SpecURL": specURL,
	})
	if err != nil {
		return nil, err
	}

	html := buf.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	})

	return module.New(basePath, mux), nil
}
