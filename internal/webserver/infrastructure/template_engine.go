package infrastructure

import (
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TemplateEngine builds the HTML renderer over the embedded views, wiring in
// the formatting helpers the templates rely on.
func TemplateEngine(viewsFS fs.FS) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	printer := message.NewPrinter(language.English)

	engine.AddFunc("n", func(value int) string {
		return printer.Sprintf("%d", value)
	})

	engine.AddFunc("pct", func(value float64) string {
		return printer.Sprintf("%.2f", value)
	})

	engine.AddFunc("inc", func(index int) int {
		return index + 1
	})

	return engine, nil
}
