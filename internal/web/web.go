// Package web holds the single static page served at "/".
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var views embed.FS

// NewEngine returns a template engine over the embedded views. Templates
// are addressed by file name without extension, e.g. "index".
func NewEngine() *html.Engine {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		// The embed pattern above guarantees the directory exists.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
