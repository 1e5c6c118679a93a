package book

import (
	"github.com/gofiber/fiber/v2"
)

func (a *Controller) List(c *fiber.Ctx) error {
	lib, err := a.store.Load()
	if err != nil {
		return err
	}

	return c.Render("views/index", fiber.Map{
		"Title": "All books in the library",
		"Books": lib,
		"Total": len(lib),
	}, "views/layout")
}
