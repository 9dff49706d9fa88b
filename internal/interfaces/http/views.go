package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewViewEngine motor de templates HTML embebido en el binario. Se pasa en fiber.Config.Views.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// El patrón de embed garantiza el directorio.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
