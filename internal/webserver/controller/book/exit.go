package book

import (
	"github.com/gofiber/fiber/v2"
)

// Exit only acknowledges the action; there is nothing to shut down or flush,
// as every previous action already persisted its changes.
func (a *Controller) Exit(c *fiber.Ctx) error {
	return c.Render("views/exit", fiber.Map{
		"Title":   "Exit",
		"Message": "Thanks for using the library management system!",
	}, "views/layout")
}
