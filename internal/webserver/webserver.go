package webserver

import (
	"embed"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dmoreno/shelfkeeper/internal/store"
	"github.com/dmoreno/shelfkeeper/internal/webserver/infrastructure"
)

//go:embed views
var viewsFS embed.FS

//go:embed css
var cssFS embed.FS

type Config struct {
	Version string
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, s *store.Store) *fiber.App {
	engine, err := infrastructure.TemplateEngine(viewsFS)
	if err != nil {
		log.Fatal(err)
	}

	controllers := SetupControllers(s)

	app := fiber.New(fiber.Config{
		Views:        engine,
		AppName:      cfg.Version,
		ErrorHandler: controllers.ErrorHandler,
	})

	routes(app, controllers)

	return app
}
