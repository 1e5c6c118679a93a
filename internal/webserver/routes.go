package webserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root:       http.FS(cssFS),
		PathPrefix: "css",
	}))

	app.Get("/", controllers.Books.List)

	app.Get("/add", controllers.Books.AddForm)
	app.Post("/add", controllers.Books.Add)

	app.Get("/remove", controllers.Books.RemoveForm)
	app.Post("/remove", controllers.Books.Remove)

	app.Get("/search", controllers.Books.Search)

	app.Get("/statistics", controllers.Books.Statistics)

	app.Get("/exit", controllers.Books.Exit)
}
